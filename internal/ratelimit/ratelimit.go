// Package ratelimit guards the solve endpoint with per-client sliding-window
// rate limiting. The default store is in-memory; a redis-backed store shares
// the window across instances when configured.
package ratelimit

import (
	"context"
	"time"
)

// Result describes a limiter decision for one key.
type Result struct {
	Allowed   bool
	Remaining int
	Limit     int
	ResetAt   time.Time
}

// Store tracks request counts per key over a sliding window.
type Store interface {
	// Allow records one request for key and reports whether it fits within
	// limit requests per window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error)
}
