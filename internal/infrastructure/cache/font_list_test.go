package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webfonts/internal/domain/entity"
	"github.com/bnema/webfonts/internal/domain/repository/mocks"
	"github.com/bnema/webfonts/internal/logging"
)

const testKey = "gwfc_remote_fonts"

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func TestFontList_GetFromTransientThenMemory(t *testing.T) {
	ctx := testContext()
	transients := mocks.NewMockTransientRepository(t)
	transients.EXPECT().Get(mock.Anything, testKey).
		Return([]byte(`[{"family":"Lato","category":"sans-serif"}]`), true, nil).Once()

	c := NewFontList(transients)

	fonts, ok, err := c.Get(ctx, testKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, fonts, 1)
	assert.Equal(t, "Lato", fonts[0].Family)

	// second read is served from memory; the mock allows only one Get
	fonts, ok, err = c.Get(ctx, testKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, fonts, 1)
}

func TestFontList_GetMiss(t *testing.T) {
	transients := mocks.NewMockTransientRepository(t)
	transients.EXPECT().Get(mock.Anything, testKey).Return(nil, false, nil)

	fonts, ok, err := NewFontList(transients).Get(testContext(), testKey)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, fonts)
}

func TestFontList_GetCorruptIsMiss(t *testing.T) {
	transients := mocks.NewMockTransientRepository(t)
	transients.EXPECT().Get(mock.Anything, testKey).Return([]byte(`{not json`), true, nil)

	_, ok, err := NewFontList(transients).Get(testContext(), testKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFontList_GetError(t *testing.T) {
	transients := mocks.NewMockTransientRepository(t)
	transients.EXPECT().Get(mock.Anything, testKey).Return(nil, false, errors.New("disk gone"))

	_, _, err := NewFontList(transients).Get(testContext(), testKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestFontList_SetWritesThrough(t *testing.T) {
	ctx := testContext()
	transients := mocks.NewMockTransientRepository(t)
	transients.EXPECT().Set(mock.Anything, testKey, []byte(`[{"family":"Roboto"}]`), 24*time.Hour).
		Return(nil).Once()

	c := NewFontList(transients)
	require.NoError(t, c.Set(ctx, testKey, []entity.RemoteFont{{Family: "Roboto"}}, 24*time.Hour))

	fonts, ok, err := c.Get(ctx, testKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Roboto", fonts[0].Family)
}

func TestFontList_DeleteRemovesBothLayers(t *testing.T) {
	ctx := testContext()
	transients := mocks.NewMockTransientRepository(t)
	transients.EXPECT().Set(mock.Anything, testKey, mock.Anything, time.Hour).Return(nil)
	transients.EXPECT().Delete(mock.Anything, testKey).Return(nil).Once()
	transients.EXPECT().Get(mock.Anything, testKey).Return(nil, false, nil).Once()

	c := NewFontList(transients)
	require.NoError(t, c.Set(ctx, testKey, []entity.RemoteFont{{Family: "Lato"}}, time.Hour))
	require.NoError(t, c.Delete(ctx, testKey))

	_, ok, err := c.Get(ctx, testKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFontList_MemoryCopyGoesStale(t *testing.T) {
	ctx := testContext()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	transients := mocks.NewMockTransientRepository(t)
	transients.EXPECT().Set(mock.Anything, testKey, mock.Anything, 24*time.Hour).Return(nil).Once()
	// another process deleted the transient after our write
	transients.EXPECT().Get(mock.Anything, testKey).Return(nil, false, nil).Once()

	c := NewFontList(transients, WithClock(clock))
	require.NoError(t, c.Set(ctx, testKey, []entity.RemoteFont{{Family: "Lato"}}, 24*time.Hour))

	_, ok, err := c.Get(ctx, testKey)
	require.NoError(t, err)
	assert.True(t, ok, "fresh memory copy is served")

	now = now.Add(fontListMemoryTTL + time.Second)
	_, ok, err = c.Get(ctx, testKey)
	require.NoError(t, err)
	assert.False(t, ok, "stale memory copy must fall back to the transient store")
}

func TestMemoryTTL(t *testing.T) {
	assert.Equal(t, fontListMemoryTTL, memoryTTL(0))
	assert.Equal(t, fontListMemoryTTL, memoryTTL(24*time.Hour))
	assert.Equal(t, 10*time.Second, memoryTTL(10*time.Second))
}
