package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Backing services
	PostgresURL string
	RedisURL    string

	// Cache discipline: how long computed stats and the leaderboard stay
	// warm before the next read recomputes them.
	StatsCacheTTL time.Duration

	// How often the lock poller re-evaluates card lock state. Wall-clock
	// crossings have no push signal, so this bounds countdown staleness.
	LockPollInterval time.Duration

	// Resolution worker pool
	ResolveWorkerCount int
	ResolveQueueSize   int
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		StatsCacheTTL:    getEnvDuration("STATS_CACHE_TTL", 5*time.Minute),
		LockPollInterval: getEnvDuration("LOCK_POLL_INTERVAL", time.Minute),

		ResolveWorkerCount: getEnvInt("RESOLVE_WORKER_COUNT", 4),
		ResolveQueueSize:   getEnvInt("RESOLVE_QUEUE_SIZE", 1000),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.PostgresURL, err = getEnvRequired("POSTGRES_URL"); err != nil {
		return nil, err
	}
	if cfg.RedisURL, err = getEnvRequired("REDIS_URL"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
