package sqlite_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webfonts/internal/infrastructure/persistence/sqlite"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestTransientRepository_SetGet(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewTransientRepository(setupTestDB(t))

	require.NoError(t, repo.Set(ctx, "gwfc_remote_fonts", []byte(`[]`), time.Hour))

	value, ok, err := repo.Get(ctx, "gwfc_remote_fonts")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), value)
}

func TestTransientRepository_ExpiredIsAbsentAndRemoved(t *testing.T) {
	ctx := testCtx()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	db := setupTestDB(t)
	repo := sqlite.NewTransientRepositoryWithClock(db, clock.Now)

	require.NoError(t, repo.Set(ctx, "settings_errors", []byte(`x`), 30*time.Second))

	clock.now = clock.now.Add(31 * time.Second)
	_, ok, err := repo.Get(ctx, "settings_errors")
	require.NoError(t, err)
	assert.False(t, ok)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM transients`).Scan(&count))
	assert.Zero(t, count)
}

func TestTransientRepository_ZeroTTLNeverExpires(t *testing.T) {
	ctx := testCtx()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	repo := sqlite.NewTransientRepositoryWithClock(setupTestDB(t), clock.Now)

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), 0))
	clock.now = clock.now.Add(365 * 24 * time.Hour)

	value, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), value)
}

func TestTransientRepository_OverwriteResetsExpiry(t *testing.T) {
	ctx := testCtx()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	repo := sqlite.NewTransientRepositoryWithClock(setupTestDB(t), clock.Now)

	require.NoError(t, repo.Set(ctx, "k", []byte("a"), time.Second))
	require.NoError(t, repo.Set(ctx, "k", []byte("b"), 0))
	clock.now = clock.now.Add(time.Hour)

	value, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("b"), value)
}

func TestTransientRepository_DeleteAbsentIsNoop(t *testing.T) {
	repo := sqlite.NewTransientRepository(setupTestDB(t))
	require.NoError(t, repo.Delete(testCtx(), "missing"))
}

func TestTransientRepository_PurgeExpired(t *testing.T) {
	ctx := testCtx()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	repo := sqlite.NewTransientRepositoryWithClock(setupTestDB(t), clock.Now)

	require.NoError(t, repo.Set(ctx, "short", []byte("1"), time.Minute))
	require.NoError(t, repo.Set(ctx, "long", []byte("2"), time.Hour))
	require.NoError(t, repo.Set(ctx, "forever", []byte("3"), 0))

	purged, err := repo.PurgeExpired(ctx, clock.now.Add(2*time.Minute))
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	_, ok, err := repo.Get(ctx, "long")
	require.NoError(t, err)
	assert.True(t, ok)
	_, ok, err = repo.Get(ctx, "forever")
	require.NoError(t, err)
	assert.True(t, ok)
}
