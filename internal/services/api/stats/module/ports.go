package module

import (
	"context"

	"marketflow/internal/services/api/stats/domain"
	statssvc "marketflow/internal/services/api/stats/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptStatsPort adapts the stats service to the domain port interface
type adaptStatsPort struct{ svc statssvc.Service }

func (a adaptStatsPort) KPIs(ctx context.Context, actorRoles []string) (domain.KPIs, error) {
	return a.svc.KPIs(ctx, actorRoles)
}

func (a adaptStatsPort) ViewTrend(ctx context.Context, actorRoles []string, in domain.TrendInput) ([]domain.TrendRow, error) {
	return a.svc.ViewTrend(ctx, actorRoles, in)
}
