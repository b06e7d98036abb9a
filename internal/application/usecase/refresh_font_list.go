package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/webfonts/internal/application/port"
	"github.com/bnema/webfonts/internal/domain/entity"
	"github.com/bnema/webfonts/internal/logging"
)

// RefreshFontListInput controls a refresh.
type RefreshFontListInput struct {
	// Force skips the cache and always fetches.
	Force bool
}

// RefreshFontListOutput is the font list and where it came from.
type RefreshFontListOutput struct {
	Fonts     []entity.RemoteFont
	FromCache bool
}

// RefreshFontListUseCase returns the remote font list, fetching it with the
// stored API key when the cache is empty.
type RefreshFontListUseCase struct {
	cache    port.FontListCache
	fetcher  port.RemoteFontFetcher
	apiKey   *ManageAPIKeyUseCase
	cacheKey string
	ttl      time.Duration
}

// NewRefreshFontListUseCase creates the use case.
func NewRefreshFontListUseCase(
	cache port.FontListCache,
	fetcher port.RemoteFontFetcher,
	apiKey *ManageAPIKeyUseCase,
	cacheKey string,
	ttl time.Duration,
) *RefreshFontListUseCase {
	return &RefreshFontListUseCase{
		cache:    cache,
		fetcher:  fetcher,
		apiKey:   apiKey,
		cacheKey: cacheKey,
		ttl:      ttl,
	}
}

// Execute returns the cached list or fetches a fresh one.
func (uc *RefreshFontListUseCase) Execute(ctx context.Context, input RefreshFontListInput) (*RefreshFontListOutput, error) {
	log := logging.FromContext(ctx)

	if !input.Force {
		fonts, ok, err := uc.cache.Get(ctx, uc.cacheKey)
		if err != nil {
			log.Warn().Err(err).Msg("failed to read remote font cache, fetching")
		} else if ok {
			log.Debug().Int("count", len(fonts)).Msg("remote font list served from cache")
			return &RefreshFontListOutput{Fonts: fonts, FromCache: true}, nil
		}
	}

	key, err := uc.apiKey.Get(ctx)
	if err != nil {
		return nil, err
	}

	fonts, err := uc.fetcher.FetchFonts(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remote font list: %w", err)
	}

	if err := uc.cache.Set(ctx, uc.cacheKey, fonts, uc.ttl); err != nil {
		log.Warn().Err(err).Msg("failed to cache remote font list")
	}

	log.Info().Int("count", len(fonts)).Msg("remote font list refreshed")
	return &RefreshFontListOutput{Fonts: fonts}, nil
}
