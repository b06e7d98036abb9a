package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/webfonts/internal/application/port"
	"github.com/bnema/webfonts/internal/domain/entity"
	"github.com/bnema/webfonts/internal/domain/repository"
	"github.com/bnema/webfonts/internal/logging"
)

const (
	fontListMemoryCapacity = 8
	// fontListMemoryTTL bounds how long the memory copy is trusted before
	// the transient store is read again. Expiry and deletions made by
	// other processes become visible within this window.
	fontListMemoryTTL = time.Minute
)

// FontList is a two-level font list cache: an in-process expiring LRU in
// front of the persistent transient store. It implements port.FontListCache.
type FontList struct {
	memory     port.Cache[string, []entity.RemoteFont]
	transients repository.TransientRepository
}

var _ port.FontListCache = (*FontList)(nil)

// NewFontList creates a font list cache over the given transient store.
func NewFontList(transients repository.TransientRepository, opts ...Option) *FontList {
	return &FontList{
		memory:     NewLRU[string, []entity.RemoteFont](fontListMemoryCapacity, opts...),
		transients: transients,
	}
}

// Get returns the cached font list, reading through to the transient store
// when the memory copy is absent or stale. An undecodable entry is a miss.
func (c *FontList) Get(ctx context.Context, key string) ([]entity.RemoteFont, bool, error) {
	if fonts, ok := c.memory.Get(key); ok {
		return fonts, true, nil
	}

	raw, ok, err := c.transients.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read font list transient: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	var fonts []entity.RemoteFont
	if err := json.Unmarshal(raw, &fonts); err != nil {
		// A corrupt entry behaves like a miss so the next refresh overwrites it.
		logging.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("discarding undecodable font list")
		return nil, false, nil
	}
	c.memory.Set(key, fonts, memoryTTL(0))
	return fonts, true, nil
}

// Set stores fonts in both layers. A ttl <= 0 never expires in the
// transient store.
func (c *FontList) Set(ctx context.Context, key string, fonts []entity.RemoteFont, ttl time.Duration) error {
	raw, err := json.Marshal(fonts)
	if err != nil {
		return fmt.Errorf("failed to encode font list: %w", err)
	}
	if err := c.transients.Set(ctx, key, raw, ttl); err != nil {
		return fmt.Errorf("failed to store font list transient: %w", err)
	}
	c.memory.Set(key, fonts, memoryTTL(ttl))
	return nil
}

// Delete removes the font list from both layers. Deleting an absent entry
// is not an error.
func (c *FontList) Delete(ctx context.Context, key string) error {
	c.memory.Remove(key)
	if err := c.transients.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete font list transient: %w", err)
	}
	return nil
}

func memoryTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > fontListMemoryTTL {
		return fontListMemoryTTL
	}
	return ttl
}
