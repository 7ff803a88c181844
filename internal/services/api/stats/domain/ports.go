package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	KPIs(ctx context.Context, actorRoles []string) (KPIs, error)
	ViewTrend(ctx context.Context, actorRoles []string, in TrendInput) ([]TrendRow, error)
}
