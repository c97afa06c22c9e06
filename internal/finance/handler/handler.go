package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"kontrola/internal/finance/service"
	id "kontrola/pkg/domain"
	"kontrola/pkg/platform/httputil"
	"kontrola/pkg/requestcontext"
)

// Service defines the finance report operation.
type Service interface {
	Report(ctx context.Context, inn id.TaxID) (*service.Report, error)
}

// Handler wires the finance endpoint to the finance service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a finance handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts finance endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/finances", h.HandleReport)
}

// HandleReport handles GET /finances?inn=.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := requestcontext.Now(ctx)

	inn, err := id.ParseTaxID(r.URL.Query().Get("inn"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	report, err := h.service.Report(ctx, inn)
	if err != nil {
		h.logger.InfoContext(ctx, "finance report not produced",
			"request_id", requestID,
			"inn", inn,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "finance report built",
		"request_id", requestID,
		"inn", inn,
		"api_version", requestcontext.APIVersion(ctx),
		"periods", len(report.Periods),
		"stability", report.Ratios.Stability(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, report)
}
