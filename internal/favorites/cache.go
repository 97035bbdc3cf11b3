package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// Cache is a Redis-backed cache of per-user favorite ID lists. It sits in
// front of the store so repeated hydrations (app restarts, reconnects) do
// not hit Postgres. A cache failure is never fatal: callers fall through
// to the store.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// NewCache creates a favorites cache on top of an existing Redis client.
func NewCache(client *redis.Client, ttl time.Duration, log *slog.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, log: log}
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return client, nil
}

func cacheKey(userID string, kind domain.EntityKind) string {
	return fmt.Sprintf("favs:%s:%s", userID, kind)
}

// GetIDs returns the cached favorite IDs for a user and kind. The second
// return value reports whether the key was present.
func (c *Cache) GetIDs(ctx context.Context, userID string, kind domain.EntityKind) ([]string, bool) {
	data, err := c.client.Get(ctx, cacheKey(userID, kind)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("favorites cache read failed", "user_id", userID, "kind", kind, "error", err)
		return nil, false
	}

	var ids []string
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		c.log.Warn("favorites cache entry corrupt", "user_id", userID, "kind", kind, "error", err)
		return nil, false
	}
	return ids, true
}

// SetIDs stores the favorite IDs for a user and kind with the cache TTL.
func (c *Cache) SetIDs(ctx context.Context, userID string, kind domain.EntityKind, ids []string) {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		c.log.Warn("favorites cache marshal failed", "user_id", userID, "error", err)
		return
	}
	if err := c.client.Set(ctx, cacheKey(userID, kind), data, c.ttl).Err(); err != nil {
		c.log.Warn("favorites cache write failed", "user_id", userID, "kind", kind, "error", err)
	}
}

// Invalidate drops the cached entries for a user. Called after any toggle
// so the next hydration reads fresh state.
func (c *Cache) Invalidate(ctx context.Context, userID string) {
	keys := []string{
		cacheKey(userID, domain.KindProduct),
		cacheKey(userID, domain.KindProvider),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("favorites cache invalidation failed", "user_id", userID, "error", err)
	}
}
