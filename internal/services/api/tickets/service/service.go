// Package service contains support-ticket workflows
package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"marketflow/internal/core/access"
	"marketflow/internal/modkit/repokit"
	perr "marketflow/internal/platform/errors"
	admindom "marketflow/internal/services/api/admin/domain"
	"marketflow/internal/services/api/tickets/domain"
	"marketflow/internal/services/api/tickets/repo"
)

// Service defines the tickets service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the tickets service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	audit admindom.RecorderPort
}

// New constructs a tickets service
// audit is required; every admin mutation records an entry
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], audit admindom.RecorderPort) *Svc {
	if db == nil {
		panic("tickets.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("tickets.Service requires a non nil Repo binder")
	}
	if audit == nil {
		panic("tickets.Service requires a non nil audit recorder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, audit: audit}
}

var fold = cases.Fold()

// List returns tickets newest-first, optionally narrowed by a free-text match
// over subject, message, category, and the owner's name and email
func (s *Svc) List(ctx context.Context, actorRoles []string, in domain.ListInput) ([]domain.Ticket, error) {
	if err := requireManager(actorRoles); err != nil {
		return nil, err
	}
	rows, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := fold.String(strings.TrimSpace(in.Q))
	out := make([]domain.Ticket, 0, len(rows))
	for _, r := range rows {
		tk := toTicket(r)
		if needle != "" && !matchesQuery(tk, needle) {
			continue
		}
		out = append(out, tk)
	}
	return out, nil
}

// SetStatus moves a ticket to any known state; resolved is terminal only by
// convention, so reopening is allowed
func (s *Svc) SetStatus(ctx context.Context, actorID string, actorRoles []string, ticketID, status string) (domain.Ticket, error) {
	if err := requireManager(actorRoles); err != nil {
		return domain.Ticket{}, err
	}
	to, ok := access.ParseTicketStatus(status)
	if !ok || !access.CanSetTicketStatus(to) {
		return domain.Ticket{}, perr.InvalidArgf("unknown ticket status %q", status)
	}

	var updated repo.RowTicket
	var prev string
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		cur, err := r.Get(ctx, ticketID)
		if err != nil {
			return err
		}
		if err := r.SetStatus(ctx, ticketID, string(to)); err != nil {
			return err
		}
		prev = cur.Status
		cur.Status = string(to)
		updated = cur
		return nil
	})
	if err != nil {
		return domain.Ticket{}, err
	}

	s.audit.Record(ctx, admindom.AuditEvent{
		ActorID:    actorID,
		Action:     admindom.ActionStatusChange,
		TargetType: "support_ticket",
		TargetID:   ticketID,
		Details:    fmt.Sprintf("%s -> %s", prev, status),
	})
	return toTicket(updated), nil
}

// Delete removes a ticket and audits the removal
func (s *Svc) Delete(ctx context.Context, actorID string, actorRoles []string, ticketID string) error {
	if err := requireManager(actorRoles); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, ticketID); err != nil {
		return err
	}
	s.audit.Record(ctx, admindom.AuditEvent{
		ActorID:    actorID,
		Action:     admindom.ActionDelete,
		TargetType: "support_ticket",
		TargetID:   ticketID,
	})
	return nil
}

// Create opens a ticket owned by the calling user
func (s *Svc) Create(ctx context.Context, ownerID string, in domain.CreateInput) (domain.Created, error) {
	id, err := s.Repo.Create(ctx, ownerID, in.Subject, in.Message, in.Category)
	if err != nil {
		return domain.Created{}, err
	}
	return domain.Created{ID: id, Status: string(access.TicketOpen)}, nil
}

func requireManager(actorRoles []string) error {
	caps := access.CapabilitiesFor(access.NewRoleSet(actorRoles...))
	if !caps.ManageTickets {
		return perr.Forbiddenf("ticket management requires an admin role")
	}
	return nil
}

// toTicket maps a row to its wire form, substituting a display fallback when
// the owner profile vanished
func toTicket(r repo.RowTicket) domain.Ticket {
	out := domain.Ticket{
		ID:         r.ID,
		Subject:    r.Subject,
		Message:    r.Message,
		Category:   r.Category,
		OwnerName:  r.OwnerName,
		OwnerEmail: r.OwnerEmail,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
	}
	if out.OwnerName == "" {
		out.OwnerName = domain.UnknownUser
	}
	return out
}

func matchesQuery(t domain.Ticket, needle string) bool {
	for _, h := range []string{t.Subject, t.Message, t.Category, t.OwnerName, t.OwnerEmail} {
		if strings.Contains(fold.String(h), needle) {
			return true
		}
	}
	return false
}
