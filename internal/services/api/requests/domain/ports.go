package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context, actorRoles []string, in ListInput) ([]Request, error)
	SetStatus(ctx context.Context, actorID string, actorRoles []string, requestID, status string) (Request, error)
	Delete(ctx context.Context, actorID string, actorRoles []string, requestID string) error
	Create(ctx context.Context, clientID string, in CreateInput) (Created, error)
}
