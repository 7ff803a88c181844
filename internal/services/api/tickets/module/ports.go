package module

import (
	"context"

	"marketflow/internal/services/api/tickets/domain"
	ticketssvc "marketflow/internal/services/api/tickets/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptTicketsPort adapts the tickets service to the domain port interface
type adaptTicketsPort struct{ svc ticketssvc.Service }

func (a adaptTicketsPort) List(ctx context.Context, actorRoles []string, in domain.ListInput) ([]domain.Ticket, error) {
	return a.svc.List(ctx, actorRoles, in)
}

func (a adaptTicketsPort) SetStatus(
	ctx context.Context, actorID string, actorRoles []string, ticketID, status string,
) (domain.Ticket, error) {
	return a.svc.SetStatus(ctx, actorID, actorRoles, ticketID, status)
}

func (a adaptTicketsPort) Delete(ctx context.Context, actorID string, actorRoles []string, ticketID string) error {
	return a.svc.Delete(ctx, actorID, actorRoles, ticketID)
}

func (a adaptTicketsPort) Create(ctx context.Context, ownerID string, in domain.CreateInput) (domain.Created, error) {
	return a.svc.Create(ctx, ownerID, in)
}
