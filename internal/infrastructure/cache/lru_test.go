package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webfonts/internal/application/port"
	"github.com/bnema/webfonts/internal/domain/entity"
)

var _ port.Cache[string, []entity.RemoteFont] = (*LRU[string, []entity.RemoteFont])(nil)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestLRU_BasicOperations(t *testing.T) {
	cache := NewLRU[string, int](3)

	cache.Set("a", 1, 0)
	cache.Set("b", 2, 0)
	cache.Set("c", 3, 0)

	val, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	val, ok = cache.Get("notfound")
	assert.False(t, ok)
	assert.Equal(t, 0, val)

	assert.Equal(t, 3, cache.Len())
}

func TestLRU_Eviction(t *testing.T) {
	cache := NewLRU[string, int](2)

	cache.Set("a", 1, 0)
	cache.Set("b", 2, 0)
	cache.Set("c", 3, 0)

	_, ok := cache.Get("a")
	assert.False(t, ok, "a should have been evicted")

	val, ok := cache.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, val)
}

func TestLRU_GetUpdatesRecency(t *testing.T) {
	cache := NewLRU[string, int](2)

	cache.Set("a", 1, 0)
	cache.Set("b", 2, 0)
	_, _ = cache.Get("a")
	cache.Set("c", 3, 0)

	_, ok := cache.Get("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = cache.Get("a")
	assert.True(t, ok)
}

func TestLRU_Expiry(t *testing.T) {
	clock := &testClock{now: time.Unix(1_700_000_000, 0)}
	cache := NewLRU[string, string](4, WithClock(clock.Now))

	cache.Set("gwfc_remote_fonts", "fonts", time.Minute)
	cache.Set("forever", "x", 0)

	clock.Advance(59 * time.Second)
	_, ok := cache.Get("gwfc_remote_fonts")
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok = cache.Get("gwfc_remote_fonts")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())

	clock.Advance(24 * time.Hour)
	_, ok = cache.Get("forever")
	assert.True(t, ok)
}

func TestLRU_SetPrefersEvictingExpired(t *testing.T) {
	clock := &testClock{now: time.Unix(1_700_000_000, 0)}
	cache := NewLRU[string, int](2, WithClock(clock.Now))

	cache.Set("old", 1, 0)
	cache.Set("short", 2, time.Second)
	clock.Advance(2 * time.Second)
	cache.Set("new", 3, 0)

	_, ok := cache.Get("old")
	assert.True(t, ok, "live entry should survive when an expired one can go")
	_, ok = cache.Get("new")
	assert.True(t, ok)
}

func TestLRU_UpdateResetsTTL(t *testing.T) {
	clock := &testClock{now: time.Unix(1_700_000_000, 0)}
	cache := NewLRU[string, int](2, WithClock(clock.Now))

	cache.Set("a", 1, time.Second)
	cache.Set("a", 2, 0)
	clock.Advance(time.Hour)

	val, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, val)
}

func TestLRU_RemoveAndClear(t *testing.T) {
	cache := NewLRU[string, int](3)

	cache.Set("a", 1, 0)
	cache.Set("b", 2, 0)
	cache.Remove("a")
	cache.Remove("missing")

	_, ok := cache.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
}

func TestLRU_ZeroCapacity(t *testing.T) {
	cache := NewLRU[string, int](0)

	cache.Set("a", 1, 0)
	cache.Set("b", 2, 0)

	assert.Equal(t, 1, cache.Len())
	_, ok := cache.Get("b")
	assert.True(t, ok)
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	cache := NewLRU[int, int](100)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := base*100 + j
				cache.Set(key, key*2, time.Minute)
				_, _ = cache.Get(key)
				if j%10 == 0 {
					cache.Remove(key)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 100)
}
