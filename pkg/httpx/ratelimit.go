package httpx

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters.
type RateLimitConfig struct {
	// Name identifies the limit in logs and in external counter keys
	Name string
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int
	// Window is the time window for rate limiting
	Window time.Duration
	// Burst allows for temporary bursts above the rate limit (memory backend only)
	Burst int
}

// Rate limit profiles used by the service.
// These can be overridden via environment variables (see init() below)
var (
	// ClientsLimit guards client registration and listing.
	// Override with: RATELIMIT_CLIENTS_REQUESTS, RATELIMIT_CLIENTS_WINDOW_SEC, RATELIMIT_CLIENTS_BURST
	ClientsLimit = RateLimitConfig{
		Name:              "clients",
		RequestsPerWindow: 10,
		Window:            time.Minute,
		Burst:             10,
	}

	// HourlyLimit is the default per-hour ceiling for every other route.
	// Override with: RATELIMIT_HOURLY_REQUESTS, RATELIMIT_HOURLY_WINDOW_SEC, RATELIMIT_HOURLY_BURST
	HourlyLimit = RateLimitConfig{
		Name:              "hourly",
		RequestsPerWindow: 50,
		Window:            time.Hour,
		Burst:             50,
	}

	// DailyLimit is the default per-day ceiling for every other route.
	// Override with: RATELIMIT_DAILY_REQUESTS, RATELIMIT_DAILY_WINDOW_SEC, RATELIMIT_DAILY_BURST
	DailyLimit = RateLimitConfig{
		Name:              "daily",
		RequestsPerWindow: 200,
		Window:            24 * time.Hour,
		Burst:             200,
	}
)

func init() {
	// Allow overriding rate limits via environment variables (useful for testing)
	LoadRateLimitsFromEnv()
}

// LoadRateLimitsFromEnv applies RATELIMIT_* overrides to the profiles. It
// runs at init and again once a .env file has been loaded.
func LoadRateLimitsFromEnv() {
	ClientsLimit = ParseRateLimitFromEnv("CLIENTS", ClientsLimit)
	HourlyLimit = ParseRateLimitFromEnv("HOURLY", HourlyLimit)
	DailyLimit = ParseRateLimitFromEnv("DAILY", DailyLimit)
}

// ParseRateLimitFromEnv reads rate limit configuration from environment variables.
// Environment variables follow the pattern: RATELIMIT_{prefix}_{field}
// For example: RATELIMIT_CLIENTS_REQUESTS, RATELIMIT_CLIENTS_WINDOW_SEC, RATELIMIT_CLIENTS_BURST
func ParseRateLimitFromEnv(prefix string, defaultConfig RateLimitConfig) RateLimitConfig {
	config := defaultConfig

	if val := os.Getenv("RATELIMIT_" + prefix + "_REQUESTS"); val != "" {
		if requests, err := strconv.Atoi(val); err == nil && requests > 0 {
			config.RequestsPerWindow = requests
		}
	}

	if val := os.Getenv("RATELIMIT_" + prefix + "_WINDOW_SEC"); val != "" {
		if windowSec, err := strconv.Atoi(val); err == nil && windowSec > 0 {
			config.Window = time.Duration(windowSec) * time.Second
		}
	}

	if val := os.Getenv("RATELIMIT_" + prefix + "_BURST"); val != "" {
		if burst, err := strconv.Atoi(val); err == nil && burst > 0 {
			config.Burst = burst
		}
	}

	return config
}

// Decision is the outcome of a single limiter check.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Limiter counts requests per key against one RateLimitConfig.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
	Config() RateLimitConfig
}

// LimiterFactory builds a Limiter for a profile. It lets the router stay
// ignorant of where counters live.
type LimiterFactory func(cfg RateLimitConfig) Limiter

// KeyExtractor is a function that extracts a unique key from the request
// for rate limiting purposes (e.g., IP address)
type KeyExtractor func(*http.Request) string

// IPKeyExtractor keys on the socket peer address. Forwarding headers are
// ignored; use TrustedProxies.ClientIP behind a reverse proxy.
func IPKeyExtractor(r *http.Request) string {
	return remoteHost(r)
}

// MemoryLimiter keeps one token bucket per key in process memory.
type MemoryLimiter struct {
	cfg      RateLimitConfig
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	mu       sync.Mutex
	// Cleanup old limiters periodically
	lastCleanup time.Time
}

// NewMemoryLimiter returns an in-process limiter for cfg. It satisfies
// LimiterFactory.
func NewMemoryLimiter(cfg RateLimitConfig) Limiter {
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerWindow
	}
	return &MemoryLimiter{
		cfg:         cfg,
		rate:        rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		lastCleanup: time.Now(),
	}
}

func (ml *MemoryLimiter) Config() RateLimitConfig { return ml.cfg }

// Allow consumes one token for key.
func (ml *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	limiter := ml.getLimiter(key)
	if limiter.Allow() {
		return Decision{Allowed: true}, nil
	}

	// Calculate retry-after (when the next token will be available)
	reservation := limiter.Reserve()
	delay := reservation.Delay()
	reservation.Cancel() // Don't actually consume the reservation

	return Decision{Allowed: false, RetryAfter: delay}, nil
}

// getLimiter retrieves or creates a rate limiter for the given key
func (ml *MemoryLimiter) getLimiter(key string) *rate.Limiter {
	if limiter, ok := ml.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(ml.rate, ml.cfg.Burst)
	actual, _ := ml.limiters.LoadOrStore(key, limiter)

	ml.maybeCleanup()

	return actual.(*rate.Limiter)
}

// maybeCleanup drops buckets that have refilled completely, they carry no
// state worth keeping.
func (ml *MemoryLimiter) maybeCleanup() {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if time.Since(ml.lastCleanup) < 5*time.Minute {
		return
	}
	ml.lastCleanup = time.Now()

	ml.limiters.Range(func(key, value any) bool {
		limiter := value.(*rate.Limiter)
		if limiter.Tokens() >= float64(ml.cfg.Burst) {
			ml.limiters.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware rejects a request with 429 when any of the limiters
// denies it. Every limiter is consulted so each window keeps counting.
func RateLimitMiddleware(keyExtractor KeyExtractor, limiters ...Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			key := keyExtractor(r)
			if key == "" {
				log.Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			var denied *RateLimitConfig
			var retry time.Duration
			for _, l := range limiters {
				d, err := l.Allow(ctx, key)
				if err != nil {
					// Counter store unavailable; fail open rather than take the API down.
					log.Warn("rate limit backend error", "limit", l.Config().Name, "error", err)
					continue
				}
				if !d.Allowed && d.RetryAfter >= retry {
					cfg := l.Config()
					denied = &cfg
					retry = d.RetryAfter
				}
			}

			if denied != nil {
				retryAfter := max(int(retry.Seconds()), 1)

				w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", denied.RequestsPerWindow))
				w.Header().Set("X-RateLimit-Window", denied.Window.String())

				log.Warn("rate limit exceeded",
					"key", key,
					"limit", denied.Name,
					"endpoint", r.URL.Path,
					"retry_after", retryAfter,
				)

				WriteError(w, http.StatusTooManyRequests,
					"rate_limit_exceeded", "Too many requests. Please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP creates a rate limiter that limits by IP address only.
func RateLimitByIP(limiters ...Limiter) Middleware {
	return RateLimitMiddleware(IPKeyExtractor, limiters...)
}

// RateLimitByClientIP limits by the originating address, honouring forwarding
// headers from trusted proxies only. A nil proxies behaves like RateLimitByIP.
func RateLimitByClientIP(proxies *TrustedProxies, limiters ...Limiter) Middleware {
	return RateLimitMiddleware(proxies.ClientIP, limiters...)
}
