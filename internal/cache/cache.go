// Package cache is a Redis cache-aside layer. Concurrent misses for the same
// key share one load through singleflight. Redis failures are logged and
// bypassed: callers always get the loader's answer.
//
// Entries are stored under a generation suffix. Invalidate bumps the
// generation instead of deleting, so a load that started before an
// invalidation writes to a generation no reader will ask for again.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"review-scheduler/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const ReviewerListKey = "scheduler:reviewers:active"

func GenerationKey(key string) string {
	return key + ":gen"
}

func VersionedKey(key string, gen int64) string {
	return fmt.Sprintf("%s:v%d", key, gen)
}

type Cache struct {
	rdb *redis.Client
	sf  singleflight.Group
	ttl time.Duration
	log *zap.Logger
}

// New returns a cache over rdb. A nil rdb yields a pass-through cache.
func New(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *Cache {
	return &Cache{
		rdb: rdb,
		ttl: ttl,
		log: log,
	}
}

// GetOrLoad returns the cached value under key, or calls load and stores the
// result for the cache TTL. Load errors are returned and never cached.
func GetOrLoad[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil || c.rdb == nil {
		return load(ctx)
	}

	gen, err := c.rdb.Get(ctx, GenerationKey(key)).Int64()
	switch {
	case errors.Is(err, redis.Nil):
		gen = 0
	case err != nil:
		c.log.Warn("cache generation read failed", zap.String("key", key), zap.Error(err))
		return load(ctx)
	}
	key = VersionedKey(key, gen)

	cached, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v T
		if jsonErr := json.Unmarshal(cached, &v); jsonErr == nil {
			return v, nil
		}
		c.log.Warn("discarding undecodable cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(loaded)
		if err != nil {
			c.log.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
			return loaded, nil
		}
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}

		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.(T), nil
}

// Invalidate moves keys to a fresh generation. Entries of the old generation
// expire with their TTL. Failures are only logged; the entry then lives until
// its TTL.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil {
		return
	}

	for _, key := range keys {
		if err := c.rdb.Incr(ctx, GenerationKey(key)).Err(); err != nil {
			c.log.Error("failed to invalidate cache",
				zap.Error(err),
				zap.String("key", key),
			)
		}
	}
}

func (c *Cache) Reviewers(ctx context.Context, load func(context.Context) ([]*models.User, error)) ([]*models.User, error) {
	return GetOrLoad(ctx, c, ReviewerListKey, load)
}

func (c *Cache) InvalidateReviewers(ctx context.Context) {
	c.Invalidate(ctx, ReviewerListKey)
}
