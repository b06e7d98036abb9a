package port

import (
	"context"

	"github.com/bnema/webfonts/internal/domain/entity"
)

// RemoteFontFetcher lists the fonts offered by the remote font service.
type RemoteFontFetcher interface {
	FetchFonts(ctx context.Context, apiKey string) ([]entity.RemoteFont, error)
}
