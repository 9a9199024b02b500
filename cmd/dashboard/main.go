package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/air-quality-dashboard/internal/adapter/csvfile"
	httpadapter "github.com/couchcryptid/air-quality-dashboard/internal/adapter/http"
	"github.com/couchcryptid/air-quality-dashboard/internal/config"
	"github.com/couchcryptid/air-quality-dashboard/internal/dataset"
	"github.com/couchcryptid/air-quality-dashboard/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	loader := csvfile.NewLoader(logger)
	svc := dataset.New(loader, cfg.DataPath, logger, metrics, nil)

	api := httpadapter.NewAPI(dataset.NewCached(svc), cfg.PreviewLimit, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, api, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Load in the foreground: the server already answers /healthz, and the
	// API returns a 503 notice until the table is ready. A failed load is
	// not fatal; the dashboard stays up and reports the missing dataset.
	if err := svc.Load(ctx); err != nil {
		logger.Warn("serving without a dataset", "path", cfg.DataPath, "error", err)
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
