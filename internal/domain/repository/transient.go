package repository

import (
	"context"
	"time"
)

// TransientRepository defines persistence for cached values with an expiry.
type TransientRepository interface {
	// Get returns the value and true if present and not expired.
	Get(ctx context.Context, name string) ([]byte, bool, error)

	// Set stores a value. A ttl <= 0 stores it without expiry.
	Set(ctx context.Context, name string, value []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent value is a no-op.
	Delete(ctx context.Context, name string) error

	// PurgeExpired removes every value that expired before now and returns the count.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
