// Package cache is a small Redis-backed JSON cache used for the public
// product catalog. All methods are safe on a nil *Cache, so callers never
// have to care whether Redis is configured.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// New connects to Redis at addr. An empty addr disables caching and
// returns nil.
func New(addr string, ttl time.Duration, log *zap.Logger) *Cache {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	return &Cache{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("component", "cache")),
	}
}

// Get unmarshals the cached value for key into dest. Returns false on
// miss or any error; a broken cache only costs a database read.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}

	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		c.log.Warn("Failed to decode cached value", zap.String("key", key), zap.Error(err))
		return false
	}

	return true
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Failed to encode value for cache", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("Failed to write cache", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate removes all keys matching pattern (e.g. "products:*").
func (c *Cache) Invalidate(ctx context.Context, pattern string) {
	if c == nil {
		return
	}

	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn("Failed to delete cache key", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("Cache invalidation scan failed", zap.String("pattern", pattern), zap.Error(err))
	}
}

func (c *Cache) Close() {
	if c == nil {
		return
	}
	c.rdb.Close()
}
