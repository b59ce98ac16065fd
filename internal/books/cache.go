package books

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/calebrosario/bookhaven-backend/pkg/logger"
	"github.com/calebrosario/bookhaven-backend/pkg/redis"
)

// CollectionCache holds a snapshot of the full collection under a fixed key.
// Every mutation invalidates it; the next list repopulates it.
type CollectionCache interface {
	Get(ctx context.Context) ([]BookDTO, bool)
	Set(ctx context.Context, records []BookDTO)
	Invalidate(ctx context.Context)
}

type redisStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// RedisCollectionCache keeps the serialized collection in redis. Cache
// failures degrade to a store read; they never fail the request.
type RedisCollectionCache struct {
	store redisStore
	ttl   time.Duration
	logg  *logger.Logger
}

var collectionKey = redis.CacheKey("books", "all")

// NewRedisCollectionCache builds the cache on top of the shared redis client.
func NewRedisCollectionCache(store *redis.Client, ttl time.Duration, logg *logger.Logger) *RedisCollectionCache {
	return &RedisCollectionCache{store: store, ttl: ttl, logg: logg}
}

func (c *RedisCollectionCache) Get(ctx context.Context) ([]BookDTO, bool) {
	if c == nil || c.store == nil {
		return nil, false
	}
	raw, err := c.store.Get(ctx, collectionKey)
	if err != nil {
		if !errors.Is(err, redis.ErrNotFound) && c.logg != nil {
			c.logg.Warn(c.logg.WithField(ctx, "cache_key", collectionKey), "collection cache read failed")
		}
		return nil, false
	}
	var records []BookDTO
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		if c.logg != nil {
			c.logg.Warn(c.logg.WithField(ctx, "cache_key", collectionKey), "collection cache entry corrupt, dropping")
		}
		c.Invalidate(ctx)
		return nil, false
	}
	return records, true
}

func (c *RedisCollectionCache) Set(ctx context.Context, records []BookDTO) {
	if c == nil || c.store == nil {
		return
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, collectionKey, string(raw), c.ttl); err != nil && c.logg != nil {
		c.logg.Warn(c.logg.WithField(ctx, "cache_key", collectionKey), "collection cache write failed")
	}
}

func (c *RedisCollectionCache) Invalidate(ctx context.Context) {
	if c == nil || c.store == nil {
		return
	}
	if err := c.store.Del(ctx, collectionKey); err != nil && c.logg != nil {
		c.logg.Warn(c.logg.WithField(ctx, "cache_key", collectionKey), "collection cache invalidation failed")
	}
}
