package model

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TokenCache records the most recently issued token per user per class.
// Set overwrites any previous entry; entries expire passively via TTL.
// Get returns ErrNotFound for absent or expired keys.
type TokenCache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}

// TokenCacheKey builds the cache key for a (class, user) pair:
// "access_<id>" or "refresh_<id>".
func TokenCacheKey(class TokenClass, userID uuid.UUID) string {
	return fmt.Sprintf("%s_%s", class, userID)
}
