package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ListCache caches serialized list pages per (resource, page, size) key.
// Every cache failure is treated as a miss; the caller falls through to
// the database.
type ListCache interface {
	Get(ctx context.Context, resource string, page, size int, dest any) bool
	Set(ctx context.Context, resource string, page, size int, v any)
	Invalidate(ctx context.Context, resource string)
}

// RedisCache implements ListCache on top of Redis. Alongside each page it
// maintains a per-resource key set so Invalidate can delete exactly the
// keys that belong to the resource without scanning.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(ctx context.Context, addr string, ttl time.Duration) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisCache{rdb: rdb, ttl: ttl}, nil
}

func pageKey(resource string, page, size int) string {
	return fmt.Sprintf("list:%s:%d:%d", resource, page, size)
}

func indexKey(resource string) string {
	return "listkeys:" + resource
}

// Get loads a cached page into dest. Returns false on miss or any error.
func (c *RedisCache) Get(ctx context.Context, resource string, page, size int, dest any) bool {
	raw, err := c.rdb.Get(ctx, pageKey(resource, page, size)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Debug().Err(err).Str("resource", resource).Msg("cache get failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Debug().Err(err).Str("resource", resource).Msg("cache entry corrupt")
		return false
	}
	return true
}

// Set stores a page and records its key in the resource index.
func (c *RedisCache) Set(ctx context.Context, resource string, page, size int, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Debug().Err(err).Str("resource", resource).Msg("cache marshal failed")
		return
	}
	key := pageKey(resource, page, size)
	pipe := c.rdb.TxPipeline()
	pipe.Set(ctx, key, raw, c.ttl)
	pipe.SAdd(ctx, indexKey(resource), key)
	pipe.Expire(ctx, indexKey(resource), c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Debug().Err(err).Str("resource", resource).Msg("cache set failed")
	}
}

// Invalidate drops every cached page of a resource.
func (c *RedisCache) Invalidate(ctx context.Context, resource string) {
	keys, err := c.rdb.SMembers(ctx, indexKey(resource)).Result()
	if err != nil {
		log.Debug().Err(err).Str("resource", resource).Msg("cache invalidate failed")
		return
	}
	keys = append(keys, indexKey(resource))
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Debug().Err(err).Str("resource", resource).Msg("cache invalidate failed")
	}
}

// Noop is a ListCache that caches nothing. Used when Redis is not
// configured and in tests.
type Noop struct{}

func (Noop) Get(context.Context, string, int, int, any) bool { return false }
func (Noop) Set(context.Context, string, int, int, any)      {}
func (Noop) Invalidate(context.Context, string)              {}
