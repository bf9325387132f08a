package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures service-level configuration.
type Server struct {
	Addr      string
	RedisAddr string

	// Per-IP rate limit for /solve; RateLimit 0 disables limiting.
	RateLimit  int
	RateWindow time.Duration

	// Allowed CORS origins; the browser UI is served from elsewhere.
	CORSOrigins []string

	// Ceilings on requested solver work. Zero means unlimited.
	MaxGenerations int
	MaxPopulation  int

	ShutdownTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:            envString("KNAPSACKD_ADDR", ":8080"),
		RedisAddr:       os.Getenv("KNAPSACKD_REDIS_ADDR"),
		RateLimit:       envInt("KNAPSACKD_RATE_LIMIT", 60),
		RateWindow:      envDuration("KNAPSACKD_RATE_WINDOW", time.Minute),
		CORSOrigins:     envList("KNAPSACKD_CORS_ORIGINS", []string{"*"}),
		MaxGenerations:  envInt("KNAPSACKD_SOLVE_MAX_GENERATIONS", 10000),
		MaxPopulation:   envInt("KNAPSACKD_SOLVE_MAX_POPULATION", 1000),
		ShutdownTimeout: envDuration("KNAPSACKD_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
