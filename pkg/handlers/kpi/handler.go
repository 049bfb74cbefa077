package kpi

import (
	"net/http"
	"time"

	"github.com/boerenkompas/dashboard/pkg/adapters"
	"github.com/boerenkompas/dashboard/pkg/handlers/response"
	"github.com/boerenkompas/dashboard/pkg/models/domain"
	"github.com/boerenkompas/dashboard/pkg/services/kpi"
	"github.com/rs/zerolog"
)

const (
	formatArray = "array"
	formatFull  = "full"
)

type Handler struct {
	svc kpi.Service
}

func NewHandler(svc kpi.Service) *Handler {
	return &Handler{svc: svc}
}

// GetKpis serves the dashboard KPIs. format=full wraps them with metadata;
// anything else returns the bare list.
func (h *Handler) GetKpis(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	t, ok := domain.TenantFromContext(ctx)
	if !ok {
		response.WriteError(w, r, http.StatusUnauthorized, response.CodeUnauthenticated, "authentication required")
		return
	}

	result, err := h.svc.GetDashboardKpis(ctx, t.ID)
	if err != nil {
		logger.Error().
			Err(err).
			Str("tenant_id", t.ID).
			Msg("failed to compute dashboard kpis")
		response.WriteError(w, r, http.StatusInternalServerError, response.CodeInternal, "failed to load dashboard KPIs")
		return
	}

	format := r.URL.Query().Get("format")
	if format == formatFull {
		response.WriteJSON(w, r, http.StatusOK, adapters.MapKPIResultDomainToApi(result, time.Since(started)))
		return
	}
	response.WriteJSON(w, r, http.StatusOK, adapters.MapKPIsDomainToApi(result.KPIs))
}

func (h *Handler) GetDebugSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	t, ok := domain.TenantFromContext(ctx)
	if !ok {
		response.WriteError(w, r, http.StatusUnauthorized, response.CodeUnauthenticated, "authentication required")
		return
	}

	snapshot, err := h.svc.GetDebugSnapshot(ctx, t.ID)
	if err != nil {
		logger.Error().
			Err(err).
			Str("tenant_id", t.ID).
			Msg("failed to compute kpi debug snapshot")
		response.WriteError(w, r, http.StatusInternalServerError, response.CodeInternal, "failed to load KPI snapshot")
		return
	}

	response.WriteJSON(w, r, http.StatusOK, adapters.MapSnapshotDomainToApi(snapshot))
}
