// Package httptransport assembles the public router: middleware chain,
// operational endpoints, and the solver routes.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"knapsackd/internal/ratelimit"
	solverhandler "knapsackd/internal/solver/handler"
	"knapsackd/pkg/platform/httputil"
	"knapsackd/pkg/platform/middleware/metadata"
	"knapsackd/pkg/platform/middleware/requestid"
	"knapsackd/pkg/requestcontext"
)

// NewRouter wires all public endpoints. The limiter is optional; passing nil
// leaves the solve routes unthrottled.
func NewRouter(h *solverhandler.Handler, limiter *ratelimit.Middleware, logger *slog.Logger, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(recoverer(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestid.Header},
		MaxAge:         300,
	}))

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Limit)
		}
		h.Register(r)
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// recoverer converts panics into the standard internal-error envelope so a
// single bad request can never crash the process.
func recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.ErrorContext(r.Context(), "handler panic recovered",
						"request_id", requestcontext.RequestID(r.Context()),
						"path", r.URL.Path,
						"panic", rec,
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error":"internal_error"}`))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
