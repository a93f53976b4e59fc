package database

import (
	"context"
	"fmt"
	"time"

	"review-scheduler/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis pings Redis up to maxAttempts times, waiting wait between
// attempts. The client is closed when every attempt fails.
func ConnectRedis(ctx context.Context, cfg config.Redis, maxAttempts int, wait time.Duration, log *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	var lastErr error
	for i := 1; i <= maxAttempts; i++ {
		if lastErr = rdb.Ping(ctx).Err(); lastErr == nil {
			log.Info("connected to redis", zap.String("addr", cfg.Addr))
			return rdb, nil
		}

		log.Warn("redis ping failed",
			zap.Int("attempt", i),
			zap.Int("max_attempts", maxAttempts),
			zap.Error(lastErr),
		)

		if i == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("connect redis after %d attempts: %w", maxAttempts, lastErr)
}
