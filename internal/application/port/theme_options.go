package port

import (
	"context"

	"github.com/bnema/webfonts/internal/domain/entity"
)

// ThemeOptionsSource reads the current theme configuration.
// A nil slice means the configuration is absent.
type ThemeOptionsSource interface {
	ThemeOptions(ctx context.Context) ([]entity.ThemeOption, error)
}
