// Package app wires configuration into the finance, registry and report
// services shared by the HTTP server and the CLI.
package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	financehandler "kontrola/internal/finance/handler"
	financemetrics "kontrola/internal/finance/metrics"
	financeprovider "kontrola/internal/finance/provider"
	financeservice "kontrola/internal/finance/service"
	"kontrola/internal/platform/config"
	"kontrola/internal/platform/upstream"
	registryhandler "kontrola/internal/registry/handler"
	registrymetrics "kontrola/internal/registry/metrics"
	"kontrola/internal/registry/providers"
	registryservice "kontrola/internal/registry/service"
	"kontrola/internal/report"
	httptransport "kontrola/internal/transport/http"
	"kontrola/pkg/platform/circuit"
)

// App holds the assembled services.
type App struct {
	Finance  *financeservice.Service
	Registry *registryservice.Service
	Report   *report.Service

	logger *slog.Logger
}

// New builds the services from cfg. Metrics are registered on reg; a nil reg
// leaves the services without metrics.
func New(cfg config.Server, logger *slog.Logger, reg prometheus.Registerer) *App {
	if logger == nil {
		logger = slog.Default()
	}
	var (
		fm *financemetrics.Metrics
		rm *registrymetrics.Metrics
	)
	if reg != nil {
		fm = financemetrics.NewWith(reg)
		rm = registrymetrics.NewWith(reg)
	}

	financeUp := upstream.New(upstream.Config{
		ProviderID: financeprovider.ProviderID,
		BaseURL:    cfg.Finances.BaseURL,
		APIKey:     cfg.Finances.APIKey,
		Timeout:    cfg.Finances.Timeout,
		Breaker:    newBreaker(financeprovider.ProviderID, cfg.Breaker),
		Observer:   fm,
	})
	registryUp := upstream.New(upstream.Config{
		ProviderID: providers.ProviderID,
		BaseURL:    cfg.Registry.BaseURL,
		APIKey:     cfg.Registry.APIKey,
		Timeout:    cfg.Registry.Timeout,
		Breaker:    newBreaker(providers.ProviderID, cfg.Breaker),
		Observer:   rm,
	})
	if !financeUp.Enabled() {
		logger.Warn("finances api key not configured, reports will be empty")
	}
	if !registryUp.Enabled() {
		logger.Warn("registry api key not configured, summaries will be empty")
	}

	finance := financeservice.New(financeprovider.New(financeUp), logger, fm)
	registry := registryservice.New(providers.New(registryUp),
		registryservice.WithLogger(logger),
		registryservice.WithMetrics(rm),
		registryservice.WithConcurrency(cfg.Contracts.Concurrency),
		registryservice.WithPaging(cfg.Paging.DefaultLimit, cfg.Paging.MaxLimit),
	)

	return &App{
		Finance:  finance,
		Registry: registry,
		Report:   report.NewService(finance, registry),
		logger:   logger,
	}
}

// Router exposes the services over HTTP.
func (a *App) Router(cfg httptransport.Config) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = a.logger
	}
	return httptransport.NewRouter(cfg,
		financehandler.New(a.Finance, a.logger),
		registryhandler.New(a.Registry, a.logger),
		report.NewHandler(a.Report, a.logger),
	)
}

func newBreaker(name string, cfg config.Breaker) *circuit.Breaker {
	return circuit.New(name,
		circuit.WithFailureThreshold(cfg.FailureThreshold),
		circuit.WithSuccessThreshold(cfg.SuccessThreshold),
		circuit.WithCooldown(cfg.Cooldown),
	)
}
