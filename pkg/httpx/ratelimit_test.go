package httpx_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serveFrom(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	t.Run("extracts from RemoteAddr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"

		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(req))
	})

	t.Run("ignores forwarding headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")
		req.Header.Set("X-Real-IP", "203.0.113.2")

		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(req))
	})

	t.Run("falls back to raw RemoteAddr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "unix-socket"

		require.Equal(t, "unix-socket", httpx.IPKeyExtractor(req))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows requests under limit", func(t *testing.T) {
		limiter := httpx.NewMemoryLimiter(httpx.RateLimitConfig{
			Name:              "test",
			RequestsPerWindow: 5,
			Window:            time.Second,
			Burst:             5,
		})
		h := httpx.RateLimitByIP(limiter)(okHandler())

		for i := range 5 {
			rec := serveFrom(h, "192.168.1.1:12345")
			require.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i+1)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		limiter := httpx.NewMemoryLimiter(httpx.RateLimitConfig{
			Name:              "test",
			RequestsPerWindow: 3,
			Window:            time.Minute,
			Burst:             3,
		})
		h := httpx.RateLimitByIP(limiter)(okHandler())

		for i := range 3 {
			rec := serveFrom(h, "192.168.1.1:12345")
			require.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i+1)
		}

		rec := serveFrom(h, "192.168.1.1:12345")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("different keys are tracked separately", func(t *testing.T) {
		limiter := httpx.NewMemoryLimiter(httpx.RateLimitConfig{
			Name:              "test",
			RequestsPerWindow: 2,
			Window:            time.Minute,
			Burst:             2,
		})
		h := httpx.RateLimitByIP(limiter)(okHandler())

		for range 2 {
			require.Equal(t, http.StatusOK, serveFrom(h, "192.168.1.1:12345").Code)
		}
		require.Equal(t, http.StatusTooManyRequests, serveFrom(h, "192.168.1.1:12345").Code)

		// But IP2 should still be allowed
		require.Equal(t, http.StatusOK, serveFrom(h, "192.168.1.2:12345").Code)
	})

	t.Run("tightest of several limits wins", func(t *testing.T) {
		hourly := httpx.NewMemoryLimiter(httpx.RateLimitConfig{
			Name: "hourly", RequestsPerWindow: 2, Window: time.Hour, Burst: 2,
		})
		daily := httpx.NewMemoryLimiter(httpx.RateLimitConfig{
			Name: "daily", RequestsPerWindow: 100, Window: 24 * time.Hour, Burst: 100,
		})
		h := httpx.RateLimitByIP(daily, hourly)(okHandler())

		for range 2 {
			require.Equal(t, http.StatusOK, serveFrom(h, "10.0.0.1:1").Code)
		}
		rec := serveFrom(h, "10.0.0.1:1")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1h0m0s", rec.Header().Get("X-RateLimit-Window"))
	})

	t.Run("shared limiter counts across handlers", func(t *testing.T) {
		limiter := httpx.NewMemoryLimiter(httpx.RateLimitConfig{
			Name: "shared", RequestsPerWindow: 2, Window: time.Minute, Burst: 2,
		})
		a := httpx.RateLimitByIP(limiter)(okHandler())
		b := httpx.RateLimitByIP(limiter)(okHandler())

		require.Equal(t, http.StatusOK, serveFrom(a, "10.0.0.2:1").Code)
		require.Equal(t, http.StatusOK, serveFrom(b, "10.0.0.2:1").Code)
		require.Equal(t, http.StatusTooManyRequests, serveFrom(a, "10.0.0.2:1").Code)
	})

	t.Run("allows request when key extractor returns empty", func(t *testing.T) {
		limiter := httpx.NewMemoryLimiter(httpx.RateLimitConfig{
			Name: "test", RequestsPerWindow: 1, Window: time.Minute, Burst: 1,
		})
		emptyExtractor := func(r *http.Request) string { return "" }
		h := httpx.RateLimitMiddleware(emptyExtractor, limiter)(okHandler())

		for range 3 {
			require.Equal(t, http.StatusOK, serveFrom(h, "").Code)
		}
	})

	t.Run("backend errors fail open", func(t *testing.T) {
		h := httpx.RateLimitByIP(failingLimiter{})(okHandler())

		for range 3 {
			require.Equal(t, http.StatusOK, serveFrom(h, "10.0.0.3:1").Code)
		}
	})
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (httpx.Decision, error) {
	return httpx.Decision{}, errors.New("connection refused")
}

func (failingLimiter) Config() httpx.RateLimitConfig {
	return httpx.RateLimitConfig{Name: "broken", RequestsPerWindow: 1, Window: time.Minute}
}

func TestRateLimitProfiles(t *testing.T) {
	profiles := map[string]httpx.RateLimitConfig{
		"clients": httpx.ClientsLimit,
		"hourly":  httpx.HourlyLimit,
		"daily":   httpx.DailyLimit,
	}

	for name, config := range profiles {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, name, config.Name)
			require.Greater(t, config.RequestsPerWindow, 0, "requests per window must be positive")
			require.Greater(t, config.Window, time.Duration(0), "window must be positive")
			require.Greater(t, config.Burst, 0, "burst must be positive")
		})
	}

	require.Less(t, httpx.HourlyLimit.Window, httpx.DailyLimit.Window)
}

func TestRateLimitHeaders(t *testing.T) {
	limiter := httpx.NewMemoryLimiter(httpx.RateLimitConfig{
		Name:              "test",
		RequestsPerWindow: 1,
		Window:            time.Minute,
		Burst:             1,
	})
	h := httpx.RateLimitByIP(limiter)(okHandler())

	require.Equal(t, http.StatusOK, serveFrom(h, "192.168.1.1:12345").Code)

	rec := serveFrom(h, "192.168.1.1:12345")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"), "should include Retry-After header")
	require.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))

	body := rec.Body.String()
	require.Contains(t, body, "rate_limit_exceeded")
	require.Contains(t, body, `"message"`)
}

// Benchmark with many different IPs (tests sync.Map performance)
func BenchmarkRateLimitManyIPs(b *testing.B) {
	limiter := httpx.NewMemoryLimiter(httpx.RateLimitConfig{
		Name:              "bench",
		RequestsPerWindow: 1000000,
		Window:            time.Minute,
		Burst:             1000,
	})
	h := httpx.RateLimitByIP(limiter)(okHandler())

	for i := 0; b.Loop(); i++ {
		serveFrom(h, fmt.Sprintf("192.168.%d.%d:12345", i%255, (i/255)%255))
	}
}

func TestParseRateLimitFromEnv(t *testing.T) {
	defaultConfig := httpx.RateLimitConfig{
		Name:              "test",
		RequestsPerWindow: 10,
		Window:            time.Minute,
		Burst:             10,
	}

	t.Run("NoEnvVarsUsesDefaults", func(t *testing.T) {
		config := httpx.ParseRateLimitFromEnv("TEST", defaultConfig)
		require.Equal(t, defaultConfig, config)
	})

	t.Run("OverrideAllFields", func(t *testing.T) {
		t.Setenv("RATELIMIT_TEST_REQUESTS", "50")
		t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "30")
		t.Setenv("RATELIMIT_TEST_BURST", "7")

		config := httpx.ParseRateLimitFromEnv("TEST", defaultConfig)
		require.Equal(t, "test", config.Name)
		require.Equal(t, 50, config.RequestsPerWindow)
		require.Equal(t, 30*time.Second, config.Window)
		require.Equal(t, 7, config.Burst)
	})

	t.Run("InvalidValuesIgnored", func(t *testing.T) {
		t.Setenv("RATELIMIT_TEST_REQUESTS", "lots")
		t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "-5")
		t.Setenv("RATELIMIT_TEST_BURST", "0")

		config := httpx.ParseRateLimitFromEnv("TEST", defaultConfig)
		require.Equal(t, defaultConfig, config)
	})

	_, set := os.LookupEnv("RATELIMIT_TEST_REQUESTS")
	require.False(t, set)
}
