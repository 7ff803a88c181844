package module

import (
	"context"

	"marketflow/internal/services/api/requests/domain"
	requestssvc "marketflow/internal/services/api/requests/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptRequestsPort adapts the requests service to the domain port interface
type adaptRequestsPort struct{ svc requestssvc.Service }

func (a adaptRequestsPort) List(ctx context.Context, actorRoles []string, in domain.ListInput) ([]domain.Request, error) {
	return a.svc.List(ctx, actorRoles, in)
}

func (a adaptRequestsPort) SetStatus(
	ctx context.Context, actorID string, actorRoles []string, requestID, status string,
) (domain.Request, error) {
	return a.svc.SetStatus(ctx, actorID, actorRoles, requestID, status)
}

func (a adaptRequestsPort) Delete(ctx context.Context, actorID string, actorRoles []string, requestID string) error {
	return a.svc.Delete(ctx, actorID, actorRoles, requestID)
}

func (a adaptRequestsPort) Create(ctx context.Context, clientID string, in domain.CreateInput) (domain.Created, error) {
	return a.svc.Create(ctx, clientID, in)
}
