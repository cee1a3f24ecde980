package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces rate limit counters in a shared Redis.
const redisKeyPrefix = "healthinfo:rl"

// InitLimiters picks where rate limit counters live. With redis storage the
// server is pinged once at start; if it cannot be reached the service falls
// back to in-memory counters rather than refusing to start. The returned
// client is nil unless Redis is in use and must be closed by the caller.
func InitLimiters(ctx context.Context, cfg Config, logger *slog.Logger) (httpx.LimiterFactory, *redis.Client) {
	// Profiles may have been overridden by a .env file loaded after init
	httpx.LoadRateLimitsFromEnv()

	if cfg.RateLimitStorage != "redis" {
		logger.Info("rate limiting with in-memory counters")
		return httpx.NewMemoryLimiter, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, falling back to in-memory rate limiting",
			"addr", cfg.RedisAddr,
			"error", err,
		)
		_ = rdb.Close()
		return httpx.NewMemoryLimiter, nil
	}

	logger.Info("rate limiting with redis counters", "addr", cfg.RedisAddr)
	return httpx.RedisLimiterFactory(rdb, redisKeyPrefix), rdb
}
