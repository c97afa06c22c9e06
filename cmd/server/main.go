package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"kontrola/internal/app"
	"kontrola/internal/platform/config"
	"kontrola/internal/platform/httpserver"
	"kontrola/internal/platform/logger"
	"kontrola/internal/platform/metrics"
	"kontrola/internal/platform/otel"
	httptransport "kontrola/internal/transport/http"
)

const serviceName = "kontrola"

// main wires configuration, services and the HTTP server, then blocks until
// SIGINT or SIGTERM. Business logic lives in the internal service packages.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("error", "json").Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		log.Error("tracing setup failed", "error", err)
		os.Exit(1)
	}

	services := app.New(cfg, log, prometheus.DefaultRegisterer)
	router := services.Router(httptransport.Config{
		Logger:         log,
		Metrics:        metrics.New(),
		MetricsHandler: metrics.Handler(),
	})
	srv := httpserver.New(cfg.Addr, router, httpserver.WithWriteTimeout(responseBudget(cfg)))

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting kontrola", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", "error", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracing shutdown failed", "error", err)
	}
}

// responseBudget covers a combined report: three sequential registry calls,
// the contract fan-out and the finance call running alongside.
func responseBudget(cfg config.Server) time.Duration {
	waves := (6 + cfg.Contracts.Concurrency - 1) / cfg.Contracts.Concurrency
	return time.Duration(3+waves)*cfg.Registry.Timeout + 10*time.Second
}
