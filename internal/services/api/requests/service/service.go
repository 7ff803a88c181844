// Package service contains service-request workflows
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
	"marketflow/internal/services/api/requests/domain"
	"marketflow/internal/services/api/requests/repo"
)

// Service defines the requests service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the requests service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	audit admindom.RecorderPort
}

// New constructs a requests service
// audit is required; every admin mutation records an entry
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], audit admindom.RecorderPort) *Svc {
	if db == nil {
		panic("requests.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("requests.Service requires a non nil Repo binder")
	}
	if audit == nil {
		panic("requests.Service requires a non nil audit recorder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, audit: audit}
}

var fold = cases.Fold()

// List returns requests newest-first, optionally narrowed by a free-text match
// over service title, client and vendor names, and client email
func (s *Svc) List(ctx context.Context, actorRoles []string, in domain.ListInput) ([]domain.Request, error) {
	if err := requireManager(actorRoles); err != nil {
		return nil, err
	}
	rows, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := fold.String(strings.TrimSpace(in.Q))
	out := make([]domain.Request, 0, len(rows))
	for _, r := range rows {
		req := toRequest(r)
		if needle != "" && !matchesQuery(req, needle) {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

// SetStatus decides a pending request; accepted and rejected are terminal
func (s *Svc) SetStatus(ctx context.Context, actorID string, actorRoles []string, requestID, status string) (domain.Request, error) {
	if err := requireManager(actorRoles); err != nil {
		return domain.Request{}, err
	}
	to, ok := access.ParseRequestStatus(status)
	if !ok {
		return domain.Request{}, perr.InvalidArgf("unknown request status %q", status)
	}

	var updated repo.RowRequest
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		cur, err := r.Get(ctx, requestID)
		if err != nil {
			return err
		}
		from, _ := access.ParseRequestStatus(cur.Status)
		if !access.CanTransitionRequest(from, to) {
			return perr.Conflictf("request is %s; only pending requests can be decided", cur.Status)
		}
		if err := r.SetStatus(ctx, requestID, string(to)); err != nil {
			return err
		}
		cur.Status = string(to)
		updated = cur
		return nil
	})
	if err != nil {
		return domain.Request{}, err
	}

	s.audit.Record(ctx, admindom.AuditEvent{
		ActorID:    actorID,
		Action:     admindom.ActionStatusChange,
		TargetType: "service_request",
		TargetID:   requestID,
		Details:    fmt.Sprintf("pending -> %s", status),
	})
	return toRequest(updated), nil
}

// Delete removes a request and audits the removal
func (s *Svc) Delete(ctx context.Context, actorID string, actorRoles []string, requestID string) error {
	if err := requireManager(actorRoles); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, requestID); err != nil {
		return err
	}
	s.audit.Record(ctx, admindom.AuditEvent{
		ActorID:    actorID,
		Action:     admindom.ActionDelete,
		TargetType: "service_request",
		TargetID:   requestID,
	})
	return nil
}

// Create opens a pending request for the calling buyer
func (s *Svc) Create(ctx context.Context, clientID string, in domain.CreateInput) (domain.Created, error) {
	id, err := s.Repo.Create(ctx, clientID, in.ServiceID, in.Message)
	if err != nil {
		return domain.Created{}, err
	}
	return domain.Created{ID: id, Status: string(access.RequestPending)}, nil
}

func requireManager(actorRoles []string) error {
	caps := access.CapabilitiesFor(access.NewRoleSet(actorRoles...))
	if !caps.ManageRequests {
		return perr.Forbiddenf("request management requires an admin role")
	}
	return nil
}

// toRequest maps a row to its wire form, substituting display fallbacks for
// rows whose joins vanished
func toRequest(r repo.RowRequest) domain.Request {
	out := domain.Request{
		ID:           r.ID,
		ServiceTitle: r.ServiceTitle,
		ClientName:   r.ClientName,
		ClientEmail:  r.ClientEmail,
		VendorName:   r.VendorName,
		Status:       r.Status,
		Message:      r.Message,
		CreatedAt:    r.CreatedAt,
	}
	if out.ServiceTitle == "" {
		out.ServiceTitle = domain.UnknownService
	}
	if out.ClientName == "" {
		out.ClientName = domain.UnknownUser
	}
	if out.VendorName == "" {
		out.VendorName = domain.UnknownUser
	}
	return out
}

func matchesQuery(r domain.Request, needle string) bool {
	for _, h := range []string{r.ServiceTitle, r.ClientName, r.ClientEmail, r.VendorName} {
		if strings.Contains(fold.String(h), needle) {
			return true
		}
	}
	return false
}
