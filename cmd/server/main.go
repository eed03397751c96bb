package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"cardeval/internal/evaluator"
	"cardeval/internal/evaluator/handler"
	evalmetrics "cardeval/internal/evaluator/metrics"
	"cardeval/internal/flyer"
	"cardeval/internal/flyer/store"
	"cardeval/internal/fraud"
	"cardeval/internal/platform/config"
	"cardeval/internal/platform/httpserver"
	"cardeval/internal/platform/logger"
	httpmetrics "cardeval/internal/platform/metrics"
	"cardeval/internal/platform/postgres"
	platformredis "cardeval/internal/platform/redis"
	"cardeval/pkg/platform/circuit"
	"cardeval/pkg/platform/httputil"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Decision logic lives in internal/evaluator.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	reg := prometheus.NewRegistry()

	directory, closeDirectory, err := buildDirectory(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeDirectory()

	breaker := circuit.New("flyer-directory",
		circuit.WithFailureThreshold(cfg.Flyer.BreakerThreshold),
		circuit.WithCooldown(cfg.Flyer.BreakerCooldown),
	)
	validator := flyer.NewValidator(directory,
		flyer.WithLicenseKey(cfg.Flyer.LicenseKey),
		flyer.WithBreaker(breaker),
		flyer.WithLogger(log),
	)

	checkers := []fraud.Checker{fraud.NewPatternChecker(cfg.Fraud.RiskThreshold, fraud.DefaultBlockedSurnames...)}
	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		checkers = append(checkers, fraud.NewRedisBlocklist(redisClient.Client))
		log.Info("fraud blocklist backed by redis")
	}
	fraudLookup := fraud.NewLookup(fraud.WithChecker(fraud.AnyOf(checkers...)), fraud.WithLogger(log))

	eval, err := evaluator.New(validator, fraudLookup,
		evaluator.WithLogger(log),
		evaluator.WithMetrics(evalmetrics.New(reg)),
	)
	if err != nil {
		return fmt.Errorf("build evaluator: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(httpmetrics.New(reg).Middleware)

	r.Get("/healthz", healthz(redisClient))
	// Store latency histograms live on the default registry.
	gatherers := prometheus.Gatherers{reg, prometheus.DefaultGatherer}
	r.Handle("/metrics", promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}))
	handler.New(eval, log).Register(r)

	srv := httpserver.New(cfg.Addr, r)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting cardeval", "addr", cfg.Addr, "flyer_store", cfg.Flyer.Store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down", "lookups", eval.LookupCount())
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func buildDirectory(ctx context.Context, cfg config.Server, log *slog.Logger) (flyer.Directory, func(), error) {
	if cfg.Flyer.Store != config.StorePostgres {
		members := store.DemoMembers()
		log.Info("using in-memory frequent flyer directory", "members", len(members))
		return store.NewInMemory(members...), func() {}, nil
	}

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	pg := store.NewPostgres(db)
	if err := pg.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate flyer directory: %w", err)
	}
	if cfg.Flyer.SeedDemo {
		if err := pg.SeedMembers(ctx, store.DemoMembers()); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("seed flyer directory: %w", err)
		}
		log.Info("seeded demo frequent flyer members")
	}
	return pg, func() { _ = db.Close() }, nil
}

func healthz(redisClient *platformredis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "redis": "down"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
