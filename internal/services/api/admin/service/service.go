// Package service contains admin workflows and the audit recorder
package service

import (
	"context"

	"marketflow/internal/core/access"
	"marketflow/internal/modkit/repokit"
	perr "marketflow/internal/platform/errors"
	"marketflow/internal/services/api/admin/domain"
	"marketflow/internal/services/api/admin/repo"
)

// Service defines the admin service contract
type Service interface {
	domain.ServicePort
	domain.RecorderPort
}

// Svc implements the admin service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	recorder *recorder
}

// New constructs an admin service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("admin.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("admin.Service requires a non nil Repo binder")
	}
	bound := binder.Bind(db)
	return &Svc{
		Repo:     bound,
		binder:   binder,
		db:       db,
		recorder: newRecorder(bound),
	}
}

// Dashboard resolves the caller's canonical route and capability flags
func (s *Svc) Dashboard(_ context.Context, roles []string) (domain.DashboardView, error) {
	rs := access.NewRoleSet(roles...)
	caps := access.CapabilitiesFor(rs)
	return domain.DashboardView{
		Route: string(access.ResolveDashboard(rs)),
		Capabilities: domain.Capabilities{
			ManageRoles:    caps.ManageRoles,
			ManageListings: caps.ManageListings,
			ManageRequests: caps.ManageRequests,
			ManageTickets:  caps.ManageTickets,
		},
	}, nil
}

// Activity returns the latest audit entries newest-first; admin only
func (s *Svc) Activity(ctx context.Context, actorRoles []string) ([]domain.ActivityEntry, error) {
	if err := requireAdmin(actorRoles); err != nil {
		return nil, err
	}
	rows, err := s.Repo.Activity(ctx, 100)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ActivityEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ActivityEntry{
			ID:         r.ID,
			Action:     r.Action,
			TargetType: r.TargetType,
			TargetID:   r.TargetID,
			Details:    r.Details,
			AdminName:  r.AdminName,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out, nil
}

// Users returns recent profiles with their role sets; admin only
func (s *Svc) Users(ctx context.Context, actorRoles []string) ([]domain.UserRow, error) {
	if err := requireAdmin(actorRoles); err != nil {
		return nil, err
	}
	rows, err := s.Repo.Users(ctx, 200)
	if err != nil {
		return nil, err
	}
	out := make([]domain.UserRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.UserRow{
			ID:        r.ID,
			Email:     r.Email,
			FullName:  r.FullName,
			Roles:     r.Roles,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

// GrantRole adds a role to a user; super_admin only
func (s *Svc) GrantRole(ctx context.Context, actorID string, actorRoles []string, userID, role string) error {
	if err := s.gateRoleChange(actorRoles, role); err != nil {
		return err
	}
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).GrantRole(ctx, userID, role)
	})
	if err != nil {
		return err
	}
	s.Record(ctx, domain.AuditEvent{
		ActorID:    actorID,
		Action:     domain.ActionAddRole,
		TargetType: "user",
		TargetID:   userID,
		Details:    role,
	})
	return nil
}

// RevokeRole removes a role from a user; super_admin only
func (s *Svc) RevokeRole(ctx context.Context, actorID string, actorRoles []string, userID, role string) error {
	if err := s.gateRoleChange(actorRoles, role); err != nil {
		return err
	}
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).RevokeRole(ctx, userID, role)
	})
	if err != nil {
		return err
	}
	s.Record(ctx, domain.AuditEvent{
		ActorID:    actorID,
		Action:     domain.ActionRemoveRole,
		TargetType: "user",
		TargetID:   userID,
		Details:    role,
	})
	return nil
}

// Record implements domain.RecorderPort
func (s *Svc) Record(ctx context.Context, e domain.AuditEvent) { s.recorder.Record(ctx, e) }

// requireAdmin gates the audit trail and user directory reads; bearer auth
// alone is not enough, the role set must carry an admin capability
func requireAdmin(actorRoles []string) error {
	caps := access.CapabilitiesFor(access.NewRoleSet(actorRoles...))
	if !caps.ManageListings {
		return perr.Forbiddenf("admin surface requires an admin role")
	}
	return nil
}

func (s *Svc) gateRoleChange(actorRoles []string, role string) error {
	if !access.CanManageRoles(access.NewRoleSet(actorRoles...)) {
		return perr.Forbiddenf("role management requires super_admin")
	}
	if _, ok := access.ParseRole(role); !ok {
		return perr.InvalidArgf("unknown role %q", role)
	}
	return nil
}
