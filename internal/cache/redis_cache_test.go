package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hayatzendah/essam-question-engine/internal/models"
	"github.com/Hayatzendah/essam-question-engine/internal/utils"
)

func newTestCache(t *testing.T) (CacheService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client, utils.NewDefaultLogger()), mr
}

func TestRedisCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	stored := models.DefaultEnumTable()
	require.NoError(t, cache.Set(ctx, "enums:table", stored, time.Hour))

	var loaded models.EnumTable
	require.NoError(t, cache.Get(ctx, "enums:table", &loaded))
	assert.Equal(t, stored.Skills, loaded.Skills)
	assert.Equal(t, stored.Providers, loaded.Providers)
}

func TestRedisCache_GetMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	var dest models.EnumTable
	err := cache.Get(context.Background(), "does-not-exist", &dest)

	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_TTLExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short", "value", time.Minute))
	mr.FastForward(2 * time.Minute)

	var dest string
	err := cache.Get(ctx, "short", &dest)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_Delete(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", "value", time.Hour))
	require.NoError(t, cache.Delete(ctx, "key"))

	var dest string
	assert.ErrorIs(t, cache.Get(ctx, "key", &dest), ErrCacheMiss)
}

func TestRedisCache_DeletePattern(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "questions:1", "a", time.Hour))
	require.NoError(t, cache.Set(ctx, "questions:2", "b", time.Hour))
	require.NoError(t, cache.Set(ctx, "enums:table", "c", time.Hour))

	require.NoError(t, cache.DeletePattern(ctx, "questions:*"))

	var dest string
	assert.ErrorIs(t, cache.Get(ctx, "questions:1", &dest), ErrCacheMiss)
	assert.ErrorIs(t, cache.Get(ctx, "questions:2", &dest), ErrCacheMiss)
	assert.NoError(t, cache.Get(ctx, "enums:table", &dest))
}

func TestRedisCache_DeletePatternNoMatches(t *testing.T) {
	cache, _ := newTestCache(t)

	assert.NoError(t, cache.DeletePattern(context.Background(), "none:*"))
}
