package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisCache "github.com/lmarques/auth-server/internal/cache/redis"
	"github.com/lmarques/auth-server/internal/hash"
	"github.com/lmarques/auth-server/internal/model"
	"github.com/lmarques/auth-server/internal/testutil"
	"github.com/lmarques/auth-server/internal/token"
)

// memoryUserStore is a minimal in-memory model.UserStore for flow tests.
type memoryUserStore struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[string]model.User)}
}

func (s *memoryUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *memoryUserStore) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (s *memoryUserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return model.User{}, model.ErrDuplicateEmail
	}
	s.users[user.Email] = user
	return user, nil
}

func TestAuth_RegisterThenLogin_Flow(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	tokens, err := token.NewJWT(token.Params{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    7 * 24 * time.Hour,
	})
	require.NoError(t, err)

	store := newMemoryUserStore()
	a := NewAuth(store, hash.NewBcrypt(), tokens, redisCache.NewCache(client), testutil.MakeNoopLogger())

	created, err := a.Register(ctx, "Luzma", "a@b.com", "12345678")
	require.NoError(t, err)
	assert.NotEqual(t, "12345678", created.Password, "stored password must be hashed")

	pair, err := a.Login(ctx, "a@b.com", "12345678")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	accessClaims, err := tokens.Parse(model.TokenAccess, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, accessClaims.UserID)
	assert.Equal(t, "a@b.com", accessClaims.Email)

	refreshClaims, err := tokens.Parse(model.TokenRefresh, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, accessClaims, refreshClaims)

	accessKey := "access_" + created.ID.String()
	refreshKey := "refresh_" + created.ID.String()

	cachedAccess, err := mr.Get(accessKey)
	require.NoError(t, err)
	assert.Equal(t, pair.AccessToken, cachedAccess)

	cachedRefresh, err := mr.Get(refreshKey)
	require.NoError(t, err)
	assert.Equal(t, pair.RefreshToken, cachedRefresh)

	assert.Equal(t, time.Hour, mr.TTL(accessKey))
	assert.Equal(t, 7*24*time.Hour, mr.TTL(refreshKey))
}

func TestAuth_FailedLogin_LeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	tokens, err := token.NewJWT(token.Params{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    7 * 24 * time.Hour,
	})
	require.NoError(t, err)

	store := newMemoryUserStore()
	a := NewAuth(store, hash.NewBcrypt(), tokens, redisCache.NewCache(client), testutil.MakeNoopLogger())

	created, err := a.Register(ctx, "Luzma", "a@b.com", "12345678")
	require.NoError(t, err)

	for range 3 {
		_, err = a.Login(ctx, "a@b.com", "wrong-password")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	}
	_, err = a.Login(ctx, "nobody@b.com", "12345678")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)

	assert.Empty(t, mr.Keys(), "failed logins must not write tokens")
	assert.False(t, mr.Exists("access_"+created.ID.String()))
}
