package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIKeys             []string      // Required: accepted X-API-KEY values (comma separated in API_KEYS)
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./healthinfo.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	CORSOrigins         []string      // Origins allowed to call the API from a browser (default: http://localhost:8000)
	TrustedProxies      []string      // Optional: proxy addresses or CIDRs whose X-Forwarded-For is believed

	RateLimitStorage string // Rate limit counter storage (memory, redis) (default: memory)
	RedisAddr        string // Redis host:port when RateLimitStorage is redis (default: localhost:6379)
	RedisPassword    string // Optional: Redis password
	RedisDB          int    // Redis database number (default: 0)
}

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables
// win over it.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		APIKeys:             splitList(os.Getenv("API_KEYS")),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "healthinfo.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		CORSOrigins:         splitList(getEnvOrDefault("CORS_ORIGINS", "http://localhost:8000")),
		TrustedProxies:      splitList(os.Getenv("TRUSTED_PROXIES")),
		RateLimitStorage:    strings.ToLower(getEnvOrDefault("RATELIMIT_STORAGE", "memory")),
		RedisAddr:           getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvIntOrDefault("REDIS_DB", 0),
	}
}

// splitList splits a comma separated value, dropping blank entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
