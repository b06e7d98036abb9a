// Package theme reads and writes the theme configuration options the
// framework stores as a single JSON option.
package theme

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/webfonts/internal/application/port"
	"github.com/bnema/webfonts/internal/domain/entity"
	"github.com/bnema/webfonts/internal/domain/repository"
	"github.com/bnema/webfonts/internal/logging"
)

// OptionsStore exposes the theme options held in the option store.
type OptionsStore struct {
	options repository.OptionRepository
	name    string
}

var _ port.ThemeOptionsSource = (*OptionsStore)(nil)

// NewOptionsStore creates a store over the entity.ThemeOptionsName option.
func NewOptionsStore(options repository.OptionRepository) *OptionsStore {
	return &OptionsStore{options: options, name: entity.ThemeOptionsName}
}

// ThemeOptions decodes the stored options. Absent or malformed data yields
// nil; only a storage failure is an error.
func (s *OptionsStore) ThemeOptions(ctx context.Context) ([]entity.ThemeOption, error) {
	log := logging.FromContext(ctx)

	raw, ok, err := s.options.Get(ctx, s.name)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme options: %w", err)
	}
	if !ok || raw == "" {
		log.Debug().Str("option", s.name).Msg("theme options absent")
		return nil, nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		log.Warn().Err(err).Str("option", s.name).Msg("ignoring malformed theme options")
		return nil, nil
	}
	return entity.ThemeOptionsFromRaw(decoded), nil
}

// Import replaces the stored theme options with a JSON object or array and
// returns the number of options it holds.
func (s *OptionsStore) Import(ctx context.Context, data []byte) (int, error) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return 0, fmt.Errorf("invalid theme options JSON: %w", err)
	}
	switch decoded.(type) {
	case map[string]any, []any:
	default:
		return 0, fmt.Errorf("theme options must be a JSON object or array")
	}

	compact, err := json.Marshal(decoded)
	if err != nil {
		return 0, fmt.Errorf("failed to encode theme options: %w", err)
	}
	if err := s.options.Set(ctx, s.name, string(compact)); err != nil {
		return 0, fmt.Errorf("failed to store theme options: %w", err)
	}

	count := len(entity.ThemeOptionsFromRaw(decoded))
	logging.FromContext(ctx).Info().Int("options", count).Msg("theme options imported")
	return count, nil
}
