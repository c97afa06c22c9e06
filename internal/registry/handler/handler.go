package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"kontrola/internal/registry/models"
	id "kontrola/pkg/domain"
	"kontrola/pkg/platform/httputil"
	"kontrola/pkg/requestcontext"
)

// Service defines the registry aggregation operations.
type Service interface {
	Summary(ctx context.Context, inn id.TaxID) (*models.Summary, error)
	Page(ctx context.Context, q models.Query) (*models.Page, error)
}

// Handler wires registry endpoints to the aggregator.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a registry handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts registry endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/registry/summary", h.HandleSummary)
	r.Get("/registry/{family}", h.HandlePage)
}

// HandleSummary handles GET /registry/summary?inn=.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := requestcontext.Now(ctx)

	inn, err := id.ParseTaxID(r.URL.Query().Get("inn"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	summary, err := h.service.Summary(ctx, inn)
	if err != nil {
		h.logger.ErrorContext(ctx, "registry summary failed",
			"request_id", requestID,
			"inn", inn,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "registry summary built",
		"request_id", requestID,
		"inn", inn,
		"contracts", summary.Contracts.Count,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, summary)
}

// HandlePage handles GET /registry/{family}.
func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	q, err := parseQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	page, err := h.service.Page(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "registry page failed",
			"request_id", requestID,
			"inn", q.INN,
			"family", q.Family,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

func parseQuery(r *http.Request) (models.Query, error) {
	values := r.URL.Query()

	family, err := models.ParseFamily(chi.URLParam(r, "family"))
	if err != nil {
		return models.Query{}, err
	}
	inn, err := id.ParseTaxID(values.Get("inn"))
	if err != nil {
		return models.Query{}, err
	}
	page, err := httputil.QueryInt(values, "page", 1)
	if err != nil {
		return models.Query{}, err
	}
	limit, err := httputil.QueryInt(values, "limit", 0)
	if err != nil {
		return models.Query{}, err
	}

	q := models.Query{
		INN:    inn,
		Family: family,
		Page:   page,
		Limit:  limit,
		Sort:   strings.TrimSpace(values.Get("sort")),
	}

	switch family {
	case models.FamilyContracts:
		if raw := values.Get("law"); raw != "" {
			law, err := models.ParseLawType(raw)
			if err != nil {
				return models.Query{}, err
			}
			q.Law = &law
		}
		if raw := values.Get("role"); raw != "" {
			role, err := models.ParseContractRole(raw)
			if err != nil {
				return models.Query{}, err
			}
			q.Role = role
		}
	case models.FamilyLitigation:
		q.PartyRole = values.Get("role")
		q.Actual = values.Get("actual")
		q.Active = values.Get("active")
		q.DateFrom = values.Get("date_from")
		q.DateTo = values.Get("date_to")
	}
	return q, nil
}
