package favorites_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/manoslocales/marketwatch/internal/favorites"
	"github.com/manoslocales/marketwatch/internal/store/mocks"
	domain "github.com/manoslocales/marketwatch/pkg/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func entries(ids ...string) []domain.FavoriteEntry {
	out := make([]domain.FavoriteEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.FavoriteEntry{EntityID: id})
	}
	return out
}

func TestIndex_Load(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		ListFavorites(mock.Anything, "user-1", domain.KindProduct).
		Return(entries("prod-1", "prod-2"), nil).
		Once()
	ms.EXPECT().
		ListFavorites(mock.Anything, "user-1", domain.KindProvider).
		Return(entries("prov-1"), nil).
		Once()

	idx := favorites.NewIndex("user-1", ms, testLogger())
	assert.False(t, idx.Loaded())

	require.NoError(t, idx.Load(context.Background()))

	assert.True(t, idx.Loaded())
	assert.True(t, idx.ContainsProduct("prod-1"))
	assert.True(t, idx.ContainsProduct("prod-2"))
	assert.False(t, idx.ContainsProduct("prod-3"))
	assert.True(t, idx.ContainsProvider("prov-1"))
	assert.ElementsMatch(t, []string{"prod-1", "prod-2"}, idx.ProductIDs())
	assert.ElementsMatch(t, []string{"prov-1"}, idx.ProviderIDs())
	assert.False(t, idx.Empty())
}

func TestIndex_Load_Empty(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		ListFavorites(mock.Anything, "user-1", domain.KindProduct).
		Return(nil, nil).
		Once()
	ms.EXPECT().
		ListFavorites(mock.Anything, "user-1", domain.KindProvider).
		Return(nil, nil).
		Once()

	idx := favorites.NewIndex("user-1", ms, testLogger())
	require.NoError(t, idx.Load(context.Background()))
	assert.True(t, idx.Empty())
}

func TestIndex_Toggle(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		ListFavorites(mock.Anything, "user-1", mock.Anything).
		Return(nil, nil).
		Twice()
	ms.EXPECT().
		ToggleFavorite(mock.Anything, "user-1", domain.KindProduct, "prod-1").
		Return(true, nil).
		Once()
	ms.EXPECT().
		ToggleFavorite(mock.Anything, "user-1", domain.KindProduct, "prod-1").
		Return(false, nil).
		Once()

	idx := favorites.NewIndex("user-1", ms, testLogger())
	require.NoError(t, idx.Load(context.Background()))

	// First toggle adds.
	added, err := idx.Toggle(context.Background(), domain.KindProduct, "prod-1")
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, idx.ContainsProduct("prod-1"))

	// Second toggle removes.
	added, err = idx.Toggle(context.Background(), domain.KindProduct, "prod-1")
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, idx.ContainsProduct("prod-1"))
}

func TestIndex_Toggle_InvalidKind(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	idx := favorites.NewIndex("user-1", ms, testLogger())

	_, err := idx.Toggle(context.Background(), domain.EntityKind("banana"), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid entity kind")
}

func TestIndex_Release(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		ListFavorites(mock.Anything, "user-1", domain.KindProduct).
		Return(entries("prod-1"), nil).
		Once()
	ms.EXPECT().
		ListFavorites(mock.Anything, "user-1", domain.KindProvider).
		Return(nil, nil).
		Once()

	idx := favorites.NewIndex("user-1", ms, testLogger())
	require.NoError(t, idx.Load(context.Background()))
	require.True(t, idx.Loaded())

	idx.Release()
	assert.False(t, idx.Loaded())
	assert.True(t, idx.Empty())
}

func setupCache(t *testing.T) (*favorites.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return favorites.NewCache(client, time.Minute, testLogger()), mr
}

func TestIndex_Load_CacheHitSkipsStore(t *testing.T) {
	t.Parallel()

	cache, _ := setupCache(t)
	ctx := context.Background()

	cache.SetIDs(ctx, "user-1", domain.KindProduct, []string{"prod-1"})
	cache.SetIDs(ctx, "user-1", domain.KindProvider, []string{})

	// No store expectations: a cache hit must not touch the store.
	ms := mocks.NewMockStore(t)

	idx := favorites.NewIndex("user-1", ms, testLogger(), favorites.WithCache(cache))
	require.NoError(t, idx.Load(ctx))
	assert.True(t, idx.ContainsProduct("prod-1"))
}

func TestIndex_Load_CacheMissFillsCache(t *testing.T) {
	t.Parallel()

	cache, _ := setupCache(t)
	ctx := context.Background()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		ListFavorites(mock.Anything, "user-1", domain.KindProduct).
		Return(entries("prod-1"), nil).
		Once()
	ms.EXPECT().
		ListFavorites(mock.Anything, "user-1", domain.KindProvider).
		Return(nil, nil).
		Once()

	idx := favorites.NewIndex("user-1", ms, testLogger(), favorites.WithCache(cache))
	require.NoError(t, idx.Load(ctx))

	// Cache is now warm.
	ids, ok := cache.GetIDs(ctx, "user-1", domain.KindProduct)
	require.True(t, ok)
	assert.Equal(t, []string{"prod-1"}, ids)
}

func TestIndex_Toggle_InvalidatesCache(t *testing.T) {
	t.Parallel()

	cache, _ := setupCache(t)
	ctx := context.Background()

	cache.SetIDs(ctx, "user-1", domain.KindProduct, []string{"prod-1"})

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		ToggleFavorite(mock.Anything, "user-1", domain.KindProduct, "prod-2").
		Return(true, nil).
		Once()

	idx := favorites.NewIndex("user-1", ms, testLogger(), favorites.WithCache(cache))
	_, err := idx.Toggle(ctx, domain.KindProduct, "prod-2")
	require.NoError(t, err)

	_, ok := cache.GetIDs(ctx, "user-1", domain.KindProduct)
	assert.False(t, ok, "toggle must invalidate the cache entry")
}

func TestCache_RedisDown(t *testing.T) {
	t.Parallel()

	cache, mr := setupCache(t)
	ctx := context.Background()

	cache.SetIDs(ctx, "user-1", domain.KindProduct, []string{"prod-1"})
	mr.Close()

	// All cache operations degrade to misses, never errors.
	_, ok := cache.GetIDs(ctx, "user-1", domain.KindProduct)
	assert.False(t, ok)
	cache.SetIDs(ctx, "user-1", domain.KindProduct, []string{"prod-2"})
	cache.Invalidate(ctx, "user-1")
}

func TestCache_TTLExpiry(t *testing.T) {
	t.Parallel()

	cache, mr := setupCache(t)
	ctx := context.Background()

	cache.SetIDs(ctx, "user-1", domain.KindProduct, []string{"prod-1"})

	mr.FastForward(2 * time.Minute)

	_, ok := cache.GetIDs(ctx, "user-1", domain.KindProduct)
	assert.False(t, ok)
}
