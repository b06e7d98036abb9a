package port

import (
	"context"
	"time"

	"github.com/bnema/webfonts/internal/domain/entity"
)

// FontListCache stores the externally fetched font list under a key.
// The core only relies on Get and Delete; Set is used by the refresher.
type FontListCache interface {
	// Get returns the cached list and true, or nil and false if absent.
	Get(ctx context.Context, key string) ([]entity.RemoteFont, bool, error)

	// Set caches a list for ttl.
	Set(ctx context.Context, key string, fonts []entity.RemoteFont, ttl time.Duration) error

	// Delete invalidates the cached list. Deleting an absent entry is a no-op.
	Delete(ctx context.Context, key string) error
}
