// Package http provides http transport for dashboard stats
package http

import (
	stdhttp "net/http"

	"marketflow/internal/modkit/httpkit"
	"marketflow/internal/services/api/stats/domain"
	svc "marketflow/internal/services/api/stats/service"
)

// Register mounts stats endpoints; the router is already behind bearer auth
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/kpis", h.kpis)
	httpkit.PostJSON[domain.TrendInput](r, "/views", h.viewTrend)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /stats/kpis Stats statsKPIs
// @Summary Dashboard headline numbers
// @Tags Stats
// @Produce json
// @Success 200 {object} domain.KPIs "ok"
// @Security BearerAuth
// @Router /stats/kpis [get]
func (h *handlers) kpis(r *stdhttp.Request) (any, error) {
	return h.svc.KPIs(r.Context(), httpkit.Roles(r))
}

// swagger:route POST /stats/views Stats statsViewTrend
// @Summary Listing views per day inside a window
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.TrendInput true "Window"
// @Success 200 {array} domain.TrendRow "ok"
// @Security BearerAuth
// @Router /stats/views [post]
func (h *handlers) viewTrend(r *stdhttp.Request, in domain.TrendInput) (any, error) {
	return h.svc.ViewTrend(r.Context(), httpkit.Roles(r), in)
}
