package handler

import (
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"knapsackd/internal/solver"
	"knapsackd/internal/solver/metrics"
	dErrors "knapsackd/pkg/domain-errors"
	"knapsackd/pkg/platform/httputil"
	"knapsackd/pkg/requestcontext"
)

// Limits are server-side ceilings on requested work, so a public endpoint
// cannot be handed an unbounded solve. Zero means unlimited.
type Limits struct {
	MaxGenerations int
	MaxPopulation  int
}

// Handler wires the solve endpoint to the solver core.
type Handler struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	limits  Limits
}

// New constructs a solve handler with its dependencies.
func New(logger *slog.Logger, metrics *metrics.Metrics, limits Limits) *Handler {
	return &Handler{
		logger:  logger,
		metrics: metrics,
		limits:  limits,
	}
}

// Register mounts solver endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/solve", h.HandleSolve)
}

// HandleSolve handles POST /solve requests.
func (h *Handler) HandleSolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[SolveRequest](w, r, h.logger, requestID)
	if !ok {
		h.metrics.IncrementOutcome("invalid")
		return
	}

	params := req.ParsedParams()
	if err := h.checkLimits(params); err != nil {
		h.metrics.IncrementOutcome("invalid")
		httputil.WriteError(w, err)
		return
	}

	result, err := solver.Solve(req.ParsedItems(), params, h.newRand(req.Seed))
	if err != nil {
		h.metrics.IncrementOutcome("invalid")
		h.logger.ErrorContext(ctx, "solve failed",
			"request_id", requestID,
			"items", len(req.ParsedItems()),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	outcome := "feasible"
	if len(result.SelectedItems) == 0 {
		outcome = "empty"
	}
	h.metrics.IncrementOutcome(outcome)
	h.metrics.AddGenerations(params.Generations)
	h.metrics.ObserveSolveLatency(time.Since(start))

	h.logger.InfoContext(ctx, "solve completed",
		"request_id", requestID,
		"items", len(req.ParsedItems()),
		"generations", params.Generations,
		"population_size", params.PopulationSize,
		"total_value", result.TotalValue,
		"total_weight", result.TotalWeight,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

func (h *Handler) checkLimits(params solver.Params) error {
	if h.limits.MaxGenerations > 0 && params.Generations > h.limits.MaxGenerations {
		return dErrors.Newf(dErrors.CodeValidation, "generations must not exceed %d", h.limits.MaxGenerations)
	}
	if h.limits.MaxPopulation > 0 && params.PopulationSize > h.limits.MaxPopulation {
		return dErrors.Newf(dErrors.CodeValidation, "population_size must not exceed %d", h.limits.MaxPopulation)
	}
	return nil
}

// newRand builds the per-solve random source: seeded from the request when a
// seed is supplied (reproducible runs), otherwise from the process-wide
// generator.
func (h *Handler) newRand(seed *uint64) *rand.Rand {
	s := rand.Uint64()
	if seed != nil {
		s = *seed
	}
	return rand.New(rand.NewPCG(s, s))
}
