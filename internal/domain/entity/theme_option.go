package entity

import (
	"sort"
	"strconv"
)

// themeOptionFaceKey is the record member holding a font family name.
const themeOptionFaceKey = "face"

// ThemeOption is one value of the theme configuration.
// Most options are unrelated to fonts; only a record whose "face" member is a
// string carries a font family.
type ThemeOption struct {
	ID    string
	Value any

	face    string
	hasFace bool
}

// NewThemeOption classifies a raw option value.
func NewThemeOption(id string, value any) ThemeOption {
	opt := ThemeOption{ID: id, Value: value}
	record, ok := value.(map[string]any)
	if !ok {
		return opt
	}
	if face, ok := record[themeOptionFaceKey].(string); ok {
		opt.face = face
		opt.hasFace = true
	}
	return opt
}

// FaceOption returns an option carrying the given font family.
func FaceOption(id, face string) ThemeOption {
	return NewThemeOption(id, map[string]any{themeOptionFaceKey: face})
}

// Face returns the font family referenced by the option, if any.
func (o ThemeOption) Face() (string, bool) {
	return o.face, o.hasFace
}

// ThemeOptionsFromRaw turns decoded theme configuration into options.
// An object yields one option per member in key order, an array one option per
// element with its index as ID. Any other shape yields no options.
func ThemeOptionsFromRaw(raw any) []ThemeOption {
	switch v := raw.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		opts := make([]ThemeOption, 0, len(keys))
		for _, k := range keys {
			opts = append(opts, NewThemeOption(k, v[k]))
		}
		return opts
	case []any:
		opts := make([]ThemeOption, 0, len(v))
		for i, item := range v {
			opts = append(opts, NewThemeOption(strconv.Itoa(i), item))
		}
		return opts
	default:
		return nil
	}
}
