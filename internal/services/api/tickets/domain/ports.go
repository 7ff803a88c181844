package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context, actorRoles []string, in ListInput) ([]Ticket, error)
	SetStatus(ctx context.Context, actorID string, actorRoles []string, ticketID, status string) (Ticket, error)
	Delete(ctx context.Context, actorID string, actorRoles []string, ticketID string) error
	Create(ctx context.Context, ownerID string, in CreateInput) (Created, error)
}
