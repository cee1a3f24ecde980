package httpx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript increments the counter for the current window and starts
// the window on the first hit. Returns {count, pttl}.
var fixedWindowScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
    redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
    redis.call('PEXPIRE', KEYS[1], ARGV[1])
    ttl = tonumber(ARGV[1])
end
return { current, ttl }
`)

// RedisLimiter counts requests in fixed windows held in Redis, so several
// service instances share one quota. Burst is ignored.
type RedisLimiter struct {
	cfg    RateLimitConfig
	rdb    redis.UniversalClient
	prefix string
}

// RedisLimiterFactory returns a LimiterFactory whose limiters keep their
// counters under "<prefix>:<limit name>:<key>".
func RedisLimiterFactory(rdb redis.UniversalClient, prefix string) LimiterFactory {
	if prefix == "" {
		prefix = "rl"
	}
	return func(cfg RateLimitConfig) Limiter {
		return &RedisLimiter{cfg: cfg, rdb: rdb, prefix: prefix}
	}
}

func (rl *RedisLimiter) Config() RateLimitConfig { return rl.cfg }

// Allow increments the window counter for key.
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	redisKey := fmt.Sprintf("%s:%s:%s", rl.prefix, rl.cfg.Name, key)

	vals, err := fixedWindowScript.Run(ctx, rl.rdb, []string{redisKey}, rl.cfg.Window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit script: %w", err)
	}
	if len(vals) != 2 {
		return Decision{}, fmt.Errorf("rate limit script: unexpected result %v", vals)
	}

	count, ttlMs := vals[0], vals[1]
	if count <= int64(rl.cfg.RequestsPerWindow) {
		return Decision{Allowed: true}, nil
	}
	return Decision{Allowed: false, RetryAfter: time.Duration(ttlMs) * time.Millisecond}, nil
}
