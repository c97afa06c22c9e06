// Package httptransport assembles the public HTTP surface.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kontrola/internal/platform/metrics"
	"kontrola/internal/platform/middleware"
	id "kontrola/pkg/domain"
	dErrors "kontrola/pkg/domain-errors"
	"kontrola/pkg/platform/httputil"
	"kontrola/pkg/platform/middleware/metadata"
	"kontrola/pkg/platform/middleware/requesttime"
	"kontrola/pkg/platform/middleware/version"
)

// Registrar mounts a bounded context's routes on a versioned subrouter.
type Registrar interface {
	Register(r chi.Router)
}

// Config holds everything the router needs besides the handlers.
type Config struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
}

// NewRouter wires middleware, operational endpoints and the versioned API routes.
func NewRouter(cfg Config, handlers ...Registrar) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.AccessLog(logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(middleware.Recover(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	for _, v := range id.SupportedVersions {
		r.Route(v.Prefix(), func(sub chi.Router) {
			sub.Use(version.ExtractVersion(v))
			for _, h := range handlers {
				h.Register(sub)
			}
		})
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})
	return r
}
