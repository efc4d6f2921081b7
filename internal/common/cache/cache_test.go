package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func newTestCache(t *testing.T) (*CacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCacheService(client), mr
}

func TestCacheService_GetSet(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	var got entry
	assert.ErrorIs(t, c.Get(ctx, "coin", &got), ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "coin", entry{Name: "Bitcoin", Price: 1.5}, time.Minute))
	require.NoError(t, c.Get(ctx, "coin", &got))
	assert.Equal(t, entry{Name: "Bitcoin", Price: 1.5}, got)
	assert.Equal(t, time.Minute, mr.TTL("coin"))

	ok, err := c.Exists(ctx, "coin")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, c.Delete(ctx, "coin"))
	ok, err = c.Exists(ctx, "coin")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheService_SetMany(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	require.NoError(t, c.SetMany(ctx, map[string]interface{}{
		"a": entry{Name: "a"},
		"b": int64(42),
	}, 0))

	var a entry
	require.NoError(t, c.Get(ctx, "a", &a))
	assert.Equal(t, "a", a.Name)

	var b int64
	require.NoError(t, c.Get(ctx, "b", &b))
	assert.Equal(t, int64(42), b)
}
