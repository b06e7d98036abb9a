package entity

// FontOrigin tells which partition of the catalog an entry belongs to.
type FontOrigin string

const (
	// FontOriginOld marks fonts already shipped by the theme framework.
	FontOriginOld FontOrigin = "old"
	// FontOriginNew marks fonts added by this service.
	FontOriginNew FontOrigin = "new"
)

// FontCatalogEntry is a single known font.
// Stylesheet is opaque pass-through data (a Google Fonts family spec such as
// "Open+Sans:400,700") and plays no part in usage resolution.
type FontCatalogEntry struct {
	Name       string     `toml:"name" json:"name"`
	Stylesheet string     `toml:"stylesheet" json:"stylesheet,omitempty"`
	Origin     FontOrigin `toml:"-" json:"origin"`
}

// FontCatalog is the known font catalog split into its two partitions.
type FontCatalog struct {
	Old []FontCatalogEntry
	New []FontCatalogEntry
}

// All returns the old fonts followed by the new fonts.
func (c *FontCatalog) All() []FontCatalogEntry {
	if c == nil {
		return nil
	}
	all := make([]FontCatalogEntry, 0, len(c.Old)+len(c.New))
	all = append(all, c.Old...)
	all = append(all, c.New...)
	return all
}

// Len returns the total number of entries in both partitions.
func (c *FontCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Old) + len(c.New)
}

// UsedFontSet is an ordered, presence-only set of font family names.
// The zero value is an empty set. Once returned by a resolver it is never
// mutated.
type UsedFontSet struct {
	names []string
	index map[string]struct{}
}

// NewUsedFontSet builds a set from names, keeping the first occurrence of each.
func NewUsedFontSet(names ...string) *UsedFontSet {
	s := &UsedFontSet{}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts name if absent and reports whether it was inserted.
// Only resolvers building a fresh set should call it.
func (s *UsedFontSet) Add(name string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[name]; ok {
		return false
	}
	s.index[name] = struct{}{}
	s.names = append(s.names, name)
	return true
}

// Contains reports whether name is in the set.
func (s *UsedFontSet) Contains(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

// Names returns the names in insertion order.
func (s *UsedFontSet) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of names in the set.
func (s *UsedFontSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// RemoteFont is a font family as listed by the remote font service.
type RemoteFont struct {
	Family   string   `json:"family"`
	Category string   `json:"category,omitempty"`
	Variants []string `json:"variants,omitempty"`
	Subsets  []string `json:"subsets,omitempty"`
}
