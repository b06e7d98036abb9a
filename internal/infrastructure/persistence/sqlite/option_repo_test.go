package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webfonts/internal/infrastructure/persistence/sqlite"
)

func TestOptionRepository_GetMissing(t *testing.T) {
	repo := sqlite.NewOptionRepository(setupTestDB(t))

	value, ok, err := repo.Get(testCtx(), "google_api_key")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestOptionRepository_SetAndUpdate(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewOptionRepository(setupTestDB(t))

	require.NoError(t, repo.Set(ctx, "google_api_key", "abc123"))
	value, ok, err := repo.Get(ctx, "google_api_key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc123", value)

	require.NoError(t, repo.Set(ctx, "google_api_key", "xyz"))
	value, _, err = repo.Get(ctx, "google_api_key")
	require.NoError(t, err)
	assert.Equal(t, "xyz", value)
}

func TestOptionRepository_EmptyValueIsPresent(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewOptionRepository(setupTestDB(t))

	require.NoError(t, repo.Set(ctx, "google_api_key", ""))
	value, ok, err := repo.Get(ctx, "google_api_key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestOptionRepository_Delete(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewOptionRepository(setupTestDB(t))

	require.NoError(t, repo.Set(ctx, "woo_options", `{}`))
	require.NoError(t, repo.Delete(ctx, "woo_options"))
	require.NoError(t, repo.Delete(ctx, "woo_options"))

	_, ok, err := repo.Get(ctx, "woo_options")
	require.NoError(t, err)
	assert.False(t, ok)
}
