package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Dashboard(ctx context.Context, roles []string) (DashboardView, error)
	Activity(ctx context.Context, actorRoles []string) ([]ActivityEntry, error)
	Users(ctx context.Context, actorRoles []string) ([]UserRow, error)
	GrantRole(ctx context.Context, actorID string, actorRoles []string, userID, role string) error
	RevokeRole(ctx context.Context, actorID string, actorRoles []string, userID, role string) error
}

// RecorderPort records privileged mutations fire-and-forget
// Record dispatches asynchronously after the caller's primary mutation has
// committed; the write is never awaited and its failure is never surfaced
type RecorderPort interface {
	Record(ctx context.Context, e AuditEvent)
}
