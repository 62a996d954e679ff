// Package redis implements the token cache on a Redis backend.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lmarques/auth-server/internal/model"
)

var _ model.TokenCache = (*Cache)(nil)

// Cache stores the most recently issued token per user per class, keyed as
// "<class>_<userID>" with a TTL matching the token lifetime.
type Cache struct {
	client *redis.Client
}

// NewCache creates a Cache on an existing Redis client.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Set writes value at key with the given TTL, overwriting any previous entry.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache key %s: %w", key, err)
	}
	return nil
}

// Get returns the value at key, or ErrNotFound for absent/expired keys.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to get cache key %s: %w", key, err)
	}
	return val, nil
}

// Del removes key. Deleting an absent key is not an error.
func (c *Cache) Del(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cache key %s: %w", key, err)
	}
	return nil
}
