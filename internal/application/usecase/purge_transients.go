package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/webfonts/internal/domain/repository"
	"github.com/bnema/webfonts/internal/logging"
)

// PurgeTransientsUseCase removes expired cached values from storage.
type PurgeTransientsUseCase struct {
	transients repository.TransientRepository
	now        func() time.Time
}

// NewPurgeTransientsUseCase creates a new PurgeTransientsUseCase.
func NewPurgeTransientsUseCase(transients repository.TransientRepository) *PurgeTransientsUseCase {
	return &PurgeTransientsUseCase{transients: transients, now: time.Now}
}

// Execute deletes every transient that has expired and returns the count.
func (uc *PurgeTransientsUseCase) Execute(ctx context.Context) (int64, error) {
	deleted, err := uc.transients.PurgeExpired(ctx, uc.now())
	if err != nil {
		return 0, fmt.Errorf("failed to purge transients: %w", err)
	}
	if deleted > 0 {
		logging.FromContext(ctx).Info().Int64("deleted", deleted).Msg("expired transients purged")
	}
	return deleted, nil
}
