package module

import (
	"context"

	"marketflow/internal/services/api/admin/domain"
	adminsvc "marketflow/internal/services/api/admin/service"
)

// Exposed holds the ports this module publishes for cross-module wiring
type Exposed struct {
	Recorder domain.RecorderPort
	Service  domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptAdminPort adapts the admin service to the domain port interface
type adaptAdminPort struct{ svc adminsvc.Service }

func (a adaptAdminPort) Dashboard(ctx context.Context, roles []string) (domain.DashboardView, error) {
	return a.svc.Dashboard(ctx, roles)
}

func (a adaptAdminPort) Activity(ctx context.Context, actorRoles []string) ([]domain.ActivityEntry, error) {
	return a.svc.Activity(ctx, actorRoles)
}

func (a adaptAdminPort) Users(ctx context.Context, actorRoles []string) ([]domain.UserRow, error) {
	return a.svc.Users(ctx, actorRoles)
}

func (a adaptAdminPort) GrantRole(ctx context.Context, actorID string, actorRoles []string, userID, role string) error {
	return a.svc.GrantRole(ctx, actorID, actorRoles, userID, role)
}

func (a adaptAdminPort) RevokeRole(ctx context.Context, actorID string, actorRoles []string, userID, role string) error {
	return a.svc.RevokeRole(ctx, actorID, actorRoles, userID, role)
}
