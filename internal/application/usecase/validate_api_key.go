package usecase

import (
	"context"

	"github.com/bnema/webfonts/internal/application/port"
	"github.com/bnema/webfonts/internal/domain/entity"
	"github.com/bnema/webfonts/internal/domain/validation"
	"github.com/bnema/webfonts/internal/logging"
)

const (
	apiKeyErrorCode    = "texterror"
	apiKeyErrorMessage = "API key contains invalid characters"
)

// ValidateAPIKeyUseCase validates a submitted API key and, when valid,
// invalidates the remote font list cached under the previous key.
type ValidateAPIKeyUseCase struct {
	cache      port.FontListCache
	cacheKey   string
	translator port.Translator
}

// NewValidateAPIKeyUseCase creates the validator. translator may be nil.
func NewValidateAPIKeyUseCase(cache port.FontListCache, cacheKey string, translator port.Translator) *ValidateAPIKeyUseCase {
	return &ValidateAPIKeyUseCase{cache: cache, cacheKey: cacheKey, translator: translator}
}

// Execute validates input. The returned value is always input unchanged.
func (uc *ValidateAPIKeyUseCase) Execute(ctx context.Context, input string) entity.ValidationResult {
	log := logging.FromContext(ctx)
	result := entity.ValidationResult{Value: input}

	if !validation.IsURLSafe(input) {
		log.Debug().Int("length", len(input)).Msg("rejected api key with unsafe characters")
		result.Errors = append(result.Errors, entity.SettingsError{
			Setting: entity.FieldAPIKey,
			Code:    apiKeyErrorCode,
			Message: uc.t(apiKeyErrorMessage),
			Type:    entity.SettingsErrorTypeError,
		})
		return result
	}

	result.Valid = true
	if uc.cache == nil {
		return result
	}

	if err := uc.cache.Delete(ctx, uc.cacheKey); err != nil {
		log.Warn().Err(err).Str("key", uc.cacheKey).Msg("failed to invalidate remote font cache")
		return result
	}
	result.Invalidated = true
	log.Debug().Str("key", uc.cacheKey).Msg("remote font cache invalidated")
	return result
}

func (uc *ValidateAPIKeyUseCase) t(key string) string {
	if uc.translator == nil {
		return key
	}
	return uc.translator.T(key)
}
