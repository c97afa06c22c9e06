// Package report concatenates the finance report and the registry summary
// of one company.
package report

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	finance "kontrola/internal/finance/service"
	"kontrola/internal/registry/models"
	id "kontrola/pkg/domain"
	dErrors "kontrola/pkg/domain-errors"
	"kontrola/pkg/platform/httputil"
	"kontrola/pkg/requestcontext"
)

// FinanceService builds finance reports.
type FinanceService interface {
	Report(ctx context.Context, inn id.TaxID) (*finance.Report, error)
}

// RegistryService builds registry summaries.
type RegistryService interface {
	Summary(ctx context.Context, inn id.TaxID) (*models.Summary, error)
}

// Combined is the full counterparty report. Finances is null when the
// statement provider has no data for the company.
type Combined struct {
	Finances *finance.Report `json:"finances"`
	Registry *models.Summary `json:"registry"`
}

// Service runs both pipelines.
type Service struct {
	finance  FinanceService
	registry RegistryService
}

func NewService(f FinanceService, r RegistryService) *Service {
	return &Service{finance: f, registry: r}
}

// Build runs the two independent pipelines side by side.
func (s *Service) Build(ctx context.Context, inn id.TaxID) (*Combined, error) {
	if inn.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "inn is required")
	}

	var out Combined
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rep, err := s.finance.Report(gctx, inn)
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil
		}
		out.Finances = rep
		return err
	})
	g.Go(func() error {
		sum, err := s.registry.Summary(gctx, inn)
		out.Registry = sum
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Handler serves the combined report.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the report endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/report", h.HandleReport)
}

// HandleReport handles GET /report?inn=.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := requestcontext.Now(ctx)

	inn, err := id.ParseTaxID(r.URL.Query().Get("inn"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	combined, err := h.service.Build(ctx, inn)
	if err != nil {
		h.logger.ErrorContext(ctx, "combined report failed",
			"request_id", requestcontext.RequestID(ctx),
			"inn", inn,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "combined report built",
		"request_id", requestcontext.RequestID(ctx),
		"inn", inn,
		"has_finances", combined.Finances != nil,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, combined)
}
