package settings

import (
	"context"
	"fmt"

	"github.com/bnema/webfonts/internal/domain/entity"
	"github.com/bnema/webfonts/internal/domain/repository"
	"github.com/bnema/webfonts/internal/logging"
)

// Submission is the outcome of saving a settings group.
type Submission struct {
	Group  string
	Values map[string]string
	Errors []entity.SettingsError
}

// Submit validates every option of group from form and persists the
// validated values. A missing form value is submitted as the empty string.
// Validation errors do not stop persistence; the validator decides which
// value is stored.
func (r *Registry) Submit(
	ctx context.Context,
	options repository.OptionRepository,
	group string,
	form map[string][]string,
) (*Submission, error) {
	log := logging.FromContext(ctx)

	registered, err := r.Settings(group)
	if err != nil {
		return nil, err
	}

	sub := &Submission{Group: group, Values: make(map[string]string, len(registered))}
	for _, s := range registered {
		var input string
		if vals := form[s.Option]; len(vals) > 0 {
			input = vals[0]
		}

		value := input
		if s.Validate != nil {
			result := s.Validate(ctx, input)
			value = result.Value
			sub.Errors = append(sub.Errors, result.Errors...)
		}

		if err := options.Set(ctx, s.Option, value); err != nil {
			return nil, fmt.Errorf("failed to save option %s: %w", s.Option, err)
		}
		sub.Values[s.Option] = value
	}

	log.Info().
		Str("group", group).
		Int("options", len(sub.Values)).
		Int("errors", len(sub.Errors)).
		Msg("settings saved")
	return sub, nil
}
