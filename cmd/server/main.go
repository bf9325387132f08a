package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"knapsackd/internal/platform/config"
	"knapsackd/internal/platform/httpserver"
	"knapsackd/internal/platform/logger"
	platformredis "knapsackd/internal/platform/redis"
	"knapsackd/internal/ratelimit"
	solverhandler "knapsackd/internal/solver/handler"
	solvermetrics "knapsackd/internal/solver/metrics"
	httptransport "knapsackd/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Solver logic lives in internal/solver.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	m := solvermetrics.New()
	handler := solverhandler.New(log, m, solverhandler.Limits{
		MaxGenerations: cfg.MaxGenerations,
		MaxPopulation:  cfg.MaxPopulation,
	})
	limiter := buildLimiter(cfg, log)
	router := httptransport.NewRouter(handler, limiter, log, cfg.CORSOrigins)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting knapsackd", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("knapsackd stopped")
}

// buildLimiter assembles the rate limiter from config: disabled when the
// limit is zero, redis-backed when a redis address is configured, in-memory
// otherwise.
func buildLimiter(cfg config.Server, log *slog.Logger) *ratelimit.Middleware {
	if cfg.RateLimit <= 0 {
		log.Info("rate limiting disabled")
		return nil
	}

	var store ratelimit.Store = ratelimit.NewInMemoryStore()
	if client, err := platformredis.New(cfg.RedisAddr); err != nil {
		log.Error("redis unavailable, falling back to in-memory rate limiting", "error", err)
	} else if client != nil {
		store = ratelimit.NewRedisStore(client)
	}

	return ratelimit.NewMiddleware(store, log, cfg.RateLimit, cfg.RateWindow)
}
