package port

import "time"

// Cache is a generic in-process cache for key-value pairs.
// Implementations should be thread-safe.
type Cache[K comparable, V any] interface {
	// Get retrieves a value by key. Returns the value and true if found and
	// not expired, or the zero value and false otherwise.
	Get(key K) (V, bool)

	// Set stores a value for the given key. A ttl <= 0 never expires.
	// If the cache is at capacity, the least recently used entry is evicted.
	Set(key K, value V, ttl time.Duration)

	// Remove deletes a key from the cache.
	Remove(key K)

	// Len returns the number of items currently in the cache.
	Len() int
}
