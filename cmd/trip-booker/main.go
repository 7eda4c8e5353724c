package main

import (
	"context"
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"tripBooker/internal/catalog"
	"tripBooker/internal/config"
	"tripBooker/internal/http-server/middleware/mwratelimit"
	"tripBooker/internal/http-server/router"
	"tripBooker/internal/lib/logger/handlers/slogpretty"
	"tripBooker/internal/lib/logger/sl"
	"tripBooker/internal/lib/metrics"
	"tripBooker/internal/lib/tracing"
	"tripBooker/internal/storage"
	"tripBooker/internal/storage/memory"
	"tripBooker/internal/storage/observed"
	"tripBooker/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting trip booker", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))
	log.Debug("Debug messages are enabled")

	trips := catalog.Default()

	ledger, closeLedger, err := setupLedger(cfg, log, trips)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	shutdownTracing, err := tracing.Setup(context.Background(), cfg.Tracing.Endpoint, cfg.Tracing.ServiceName)
	if err != nil {
		log.Error("failed to init tracing", sl.Err(err))
		os.Exit(1)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	opts := router.Options{
		Strict:  cfg.Validation.Strict,
		Metrics: m,
	}
	if cfg.RateLimit.Enabled {
		opts.Limiter = mwratelimit.NewLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	handler := router.New(log, trips, observed.New(ledger, m), opts)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = shutdownTracing(ctx); err != nil {
		log.Error("failed to flush traces", sl.Err(err))
	}

	closeOrLog(log, "storage", closeLedger)

	log.Info("storage closed")
}

// setupLedger picks the booking ledger backend. The memory backend has nothing
// to close.
func setupLedger(cfg *config.Config, log *slog.Logger, trips storage.TripFinder) (storage.Ledger, func() error, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pg, err := postgres.InitDB(&cfg.Database, log, trips)
		if err != nil {
			return nil, nil, err
		}

		if err = pg.Migrate(); err != nil {
			closeOrLog(log, "postgres connection", pg.Close)
			return nil, nil, err
		}

		return pg, pg.Close, nil
	default:
		return memory.New(log, trips), func() error { return nil }, nil
	}
}

// closeOrLog runs closeFn and logs its error, if any.
func closeOrLog(log *slog.Logger, what string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Error("failed to close "+what, sl.Err(err))
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
