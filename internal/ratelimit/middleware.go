package ratelimit

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	dErrors "knapsackd/pkg/domain-errors"
	"knapsackd/pkg/platform/httputil"
	"knapsackd/pkg/requestcontext"
)

// Middleware applies a per-client-IP request limit to the routes it wraps.
type Middleware struct {
	store  Store
	logger *slog.Logger
	limit  int
	window time.Duration
}

// NewMiddleware constructs the middleware. limit is requests per window per
// client IP.
func NewMiddleware(store Store, logger *slog.Logger, limit int, window time.Duration) *Middleware {
	return &Middleware{
		store:  store,
		logger: logger,
		limit:  limit,
		window: window,
	}
}

// Limit enforces the configured rate. Store failures fail open: limiter
// trouble must not take the endpoint down.
func (m *Middleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		key := requestcontext.ClientIP(ctx)
		if key == "" {
			key = "unknown"
		}

		result, err := m.store.Allow(ctx, key, m.limit, m.window)
		if err != nil {
			m.logger.ErrorContext(ctx, "rate limit check failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
			next.ServeHTTP(w, r)
			return
		}

		addRateLimitHeaders(w, result)

		if !result.Allowed {
			retryAfter := max(1, int(time.Until(result.ResetAt).Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "rate limit exceeded, retry later"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func addRateLimitHeaders(w http.ResponseWriter, result *Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}
