package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/webfonts/internal/application/port"
	"github.com/bnema/webfonts/internal/domain/entity"
	"github.com/bnema/webfonts/internal/logging"
)

// UsedFontScope memoises the used-font set for one rendering pass.
// The caller owns it and discards it when the pass ends. Inputs are assumed
// fixed for the lifetime of a scope. Not safe for concurrent use.
type UsedFontScope struct {
	result *entity.UsedFontSet
	scans  int
}

// NewUsedFontScope creates an empty scope.
func NewUsedFontScope() *UsedFontScope {
	return &UsedFontScope{}
}

// Scans returns how many times the inputs were scanned within this scope.
func (s *UsedFontScope) Scans() int {
	if s == nil {
		return 0
	}
	return s.scans
}

// ResolveUsedFontsUseCase determines which catalog fonts the theme references.
type ResolveUsedFontsUseCase struct{}

// NewResolveUsedFontsUseCase creates the resolver.
func NewResolveUsedFontsUseCase() *ResolveUsedFontsUseCase {
	return &ResolveUsedFontsUseCase{}
}

// Execute returns the catalog entries referenced by a face of at least one
// option, in catalog order. Malformed or absent options yield an empty set.
// With a non-nil scope the first result is returned again on later calls.
func (uc *ResolveUsedFontsUseCase) Execute(
	ctx context.Context,
	scope *UsedFontScope,
	catalog []entity.FontCatalogEntry,
	options []entity.ThemeOption,
) *entity.UsedFontSet {
	if scope != nil && scope.result != nil {
		return scope.result
	}

	used := resolveUsedFonts(catalog, options)
	if scope != nil {
		scope.result = used
		scope.scans++
	}

	logging.FromContext(ctx).Debug().
		Int("options", len(options)).
		Int("catalog", len(catalog)).
		Int("used", used.Len()).
		Msg("resolved fonts used in theme")
	return used
}

func resolveUsedFonts(catalog []entity.FontCatalogEntry, options []entity.ThemeOption) *entity.UsedFontSet {
	used := &entity.UsedFontSet{}
	if len(options) == 0 {
		return used
	}

	faces := make(map[string]struct{})
	for _, opt := range options {
		if face, ok := opt.Face(); ok {
			faces[face] = struct{}{}
		}
	}
	if len(faces) == 0 {
		return used
	}

	for _, font := range catalog {
		if _, ok := faces[font.Name]; ok {
			used.Add(font.Name)
		}
	}
	return used
}

// ThemeFontsUseCase loads the catalog and theme options and resolves the used fonts.
type ThemeFontsUseCase struct {
	catalog  port.FontCatalogSource
	options  port.ThemeOptionsSource
	resolver *ResolveUsedFontsUseCase
}

// NewThemeFontsUseCase creates a use case reading from the given sources.
func NewThemeFontsUseCase(
	catalog port.FontCatalogSource,
	options port.ThemeOptionsSource,
	resolver *ResolveUsedFontsUseCase,
) *ThemeFontsUseCase {
	if resolver == nil {
		resolver = NewResolveUsedFontsUseCase()
	}
	return &ThemeFontsUseCase{catalog: catalog, options: options, resolver: resolver}
}

// Catalog returns the font catalog.
func (uc *ThemeFontsUseCase) Catalog(ctx context.Context) (*entity.FontCatalog, error) {
	return uc.catalog.Catalog(ctx)
}

// UsedFonts resolves the used fonts within scope. A theme options read error
// is logged and treated as absent configuration.
func (uc *ThemeFontsUseCase) UsedFonts(ctx context.Context, scope *UsedFontScope) (*entity.UsedFontSet, error) {
	if scope != nil && scope.result != nil {
		return scope.result, nil
	}

	catalog, err := uc.catalog.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load font catalog: %w", err)
	}

	options, err := uc.options.ThemeOptions(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("theme options unavailable, treating as empty")
		options = nil
	}

	return uc.resolver.Execute(ctx, scope, catalog.All(), options), nil
}
