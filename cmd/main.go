package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/intelliclaim/apiconfig/config"
	"github.com/intelliclaim/apiconfig/internal/endpoints"
	"github.com/intelliclaim/apiconfig/internal/httpserver"
	"github.com/intelliclaim/apiconfig/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Server.Environment, logger.WithSource())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	apiEndpoints := cfg.API.Endpoints()
	logEndpoints(log, cfg.API, apiEndpoints)

	router, err := setupRouter(log, apiEndpoints)
	if err != nil {
		log.Error("Failed to create router", slog.Any("err", err))
		os.Exit(1)
	}

	srv, err := httpserver.New(cfg.Server.Address, router, log)
	if err != nil {
		log.Error("Failed to create server", slog.Any("err", err))
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)

	go func() {
		srvErrCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("Error during shutdown", slog.Any("err", err))
		}
	case err := <-srvErrCh:
		if err != nil {
			log.Error("Error starting server", slog.Any("err", err))
			os.Exit(1)
		}
	}
}

func logEndpoints(log *slog.Logger, api config.APIConfig, e *endpoints.Endpoints) {
	source := "fallback"
	if api.URL != "" {
		source = "override"
	}

	attrs := []any{
		slog.String("base_url", e.BaseURL()),
		slog.String("source", source),
	}
	for _, name := range endpoints.Names() {
		u, _ := e.URL(name)
		attrs = append(attrs, slog.String(string(name), u))
	}

	log.Info("Resolved API endpoints", attrs...)
}
