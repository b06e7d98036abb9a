// Package fonts loads the font catalog the options page lists.
package fonts

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/webfonts/internal/application/port"
	"github.com/bnema/webfonts/internal/domain/entity"
	"github.com/bnema/webfonts/internal/domain/validation"
	"github.com/bnema/webfonts/internal/logging"
)

//go:embed default_catalog.toml
var defaultCatalog []byte

type catalogFile struct {
	OldFonts []entity.FontCatalogEntry `toml:"old_fonts"`
	NewFonts []entity.FontCatalogEntry `toml:"new_fonts"`
}

// CatalogLoader reads the catalog from a TOML file, or from the embedded
// default when no path is set. The parsed catalog is cached after the
// first successful load.
type CatalogLoader struct {
	path string

	mu      sync.Mutex
	catalog *entity.FontCatalog
}

var _ port.FontCatalogSource = (*CatalogLoader)(nil)

// NewCatalogLoader creates a catalog loader for path ("" for the default).
func NewCatalogLoader(path string) *CatalogLoader {
	return &CatalogLoader{path: path}
}

// Catalog returns the loaded catalog.
func (l *CatalogLoader) Catalog(ctx context.Context) (*entity.FontCatalog, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.catalog != nil {
		return l.catalog, nil
	}

	log := logging.FromContext(ctx)

	data := defaultCatalog
	source := "embedded"
	if l.path != "" {
		var err error
		data, err = os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", l.path, err)
		}
		source = l.path
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", source, err)
	}

	log.Debug().
		Str("source", source).
		Int("old_fonts", len(catalog.Old)).
		Int("new_fonts", len(catalog.New)).
		Msg("font catalog loaded")

	l.catalog = catalog
	return catalog, nil
}

// Reset points the loader at path ("" for the default) and drops the
// cached catalog so the next call reloads it.
func (l *CatalogLoader) Reset(path string) {
	l.mu.Lock()
	l.path = path
	l.catalog = nil
	l.mu.Unlock()
}

// ParseCatalog decodes and validates a TOML catalog document.
func ParseCatalog(data []byte) (*entity.FontCatalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	var errs []string
	errs = append(errs, validation.ValidateFontNames("old_fonts", names(file.OldFonts))...)
	errs = append(errs, validation.ValidateFontNames("new_fonts", names(file.NewFonts))...)
	if len(errs) > 0 {
		return nil, fmt.Errorf("catalog validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return &entity.FontCatalog{
		Old: normalize(file.OldFonts, entity.FontOriginOld),
		New: normalize(file.NewFonts, entity.FontOriginNew),
	}, nil
}

func names(entries []entity.FontCatalogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func normalize(entries []entity.FontCatalogEntry, origin entity.FontOrigin) []entity.FontCatalogEntry {
	out := make([]entity.FontCatalogEntry, len(entries))
	for i, e := range entries {
		out[i] = entity.FontCatalogEntry{
			Name:       strings.TrimSpace(e.Name),
			Stylesheet: strings.TrimSpace(e.Stylesheet),
			Origin:     origin,
		}
	}
	return out
}
