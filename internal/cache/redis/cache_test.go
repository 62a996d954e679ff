package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmarques/auth-server/internal/model"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCache(client), mr
}

func TestCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	userID := uuid.New()
	key := model.TokenCacheKey(model.TokenAccess, userID)

	require.NoError(t, c.Set(ctx, key, "token-value", time.Hour))

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "token-value", got)
	assert.Equal(t, time.Hour, mr.TTL(key))
}

func TestCache_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	_, err := c.Get(ctx, "access_missing")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestCache_Set_Overwrites(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	key := model.TokenCacheKey(model.TokenRefresh, uuid.New())

	require.NoError(t, c.Set(ctx, key, "first", time.Minute))
	require.NoError(t, c.Set(ctx, key, "second", time.Hour))

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
	assert.Equal(t, time.Hour, mr.TTL(key))
}

func TestCache_EntryExpires(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	key := model.TokenCacheKey(model.TokenAccess, uuid.New())
	require.NoError(t, c.Set(ctx, key, "short-lived", time.Second))

	mr.FastForward(2 * time.Second)

	_, err := c.Get(ctx, key)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestCache_Del(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	key := model.TokenCacheKey(model.TokenAccess, uuid.New())
	require.NoError(t, c.Set(ctx, key, "v", time.Minute))
	require.NoError(t, c.Del(ctx, key))

	_, err := c.Get(ctx, key)
	require.ErrorIs(t, err, model.ErrNotFound)

	// deleting again is a no-op
	require.NoError(t, c.Del(ctx, key))
}

func TestCache_Set_BackendDown(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	mr.Close()

	err := c.Set(ctx, "access_x", "v", time.Minute)
	require.Error(t, err)
}
