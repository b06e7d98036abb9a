package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/webfonts/internal/domain/entity"
	"github.com/bnema/webfonts/internal/domain/repository"
	"github.com/bnema/webfonts/internal/logging"
)

// ErrMissingAPIKey is returned when an operation needs the API key and none is stored.
var ErrMissingAPIKey = errors.New("google api key is not set")

// ManageAPIKeyUseCase reads and stores the Google API key option.
type ManageAPIKeyUseCase struct {
	options   repository.OptionRepository
	validator *ValidateAPIKeyUseCase
}

// NewManageAPIKeyUseCase creates the use case.
func NewManageAPIKeyUseCase(options repository.OptionRepository, validator *ValidateAPIKeyUseCase) *ManageAPIKeyUseCase {
	return &ManageAPIKeyUseCase{options: options, validator: validator}
}

// Get returns the stored key, or ErrMissingAPIKey.
func (uc *ManageAPIKeyUseCase) Get(ctx context.Context) (string, error) {
	key, ok, err := uc.options.Get(ctx, entity.FieldAPIKey)
	if err != nil {
		return "", fmt.Errorf("failed to read api key: %w", err)
	}
	if !ok || key == "" {
		return "", ErrMissingAPIKey
	}
	return key, nil
}

// Set validates key and stores it only when valid.
func (uc *ManageAPIKeyUseCase) Set(ctx context.Context, key string) (entity.ValidationResult, error) {
	result := uc.validator.Execute(ctx, key)
	if !result.Valid {
		return result, nil
	}

	if err := uc.options.Set(ctx, entity.FieldAPIKey, result.Value); err != nil {
		return result, fmt.Errorf("failed to store api key: %w", err)
	}

	logging.FromContext(ctx).Info().Msg("google api key updated")
	return result, nil
}
