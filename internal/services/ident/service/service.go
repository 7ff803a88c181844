// Package service provides the ident service implementation
package service

import (
	"context"
	"time"

	"marketflow/internal/modkit/repokit"
	perr "marketflow/internal/platform/errors"
	"marketflow/internal/services/ident/domain"
)

// Svc resolves bearer tokens into principals and revokes sessions
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
	repo   domain.Repo

	now func() time.Time
}

// Compile-time assertion: Svc implements domain.Ports
var _ domain.Ports = (*Svc)(nil)

// New constructs the ident service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo]) *Svc {
	if db == nil {
		panic("ident.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("ident.Service requires a non-nil Repo binder")
	}
	return &Svc{db: db, binder: binder, repo: binder.Bind(db), now: time.Now}
}

// Resolve maps a presented bearer token to its Principal
// Roles are loaded on every call so grants and revocations apply to the very
// next request
func (s *Svc) Resolve(ctx context.Context, token string) (domain.Principal, error) {
	if token == "" {
		return domain.Principal{}, perr.Unauthorizedf("missing bearer token")
	}

	sess, err := s.repo.SessionByTokenHash(ctx, domain.HashToken(token))
	if err != nil {
		return domain.Principal{}, err
	}
	if sess.ExpiresAt != nil && sess.ExpiresAt.Before(s.now()) {
		return domain.Principal{}, perr.Unauthorizedf("session expired")
	}

	email, name, err := s.repo.ProfileByUser(ctx, sess.UserID)
	if err != nil {
		return domain.Principal{}, err
	}
	roles, err := s.repo.RolesByUser(ctx, sess.UserID)
	if err != nil {
		return domain.Principal{}, err
	}

	return domain.Principal{
		UserID:   sess.UserID,
		Email:    email,
		FullName: name,
		Roles:    roles,
	}, nil
}

// Revoke deletes the session for the given token so it stops resolving
func (s *Svc) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return perr.Unauthorizedf("missing bearer token")
	}
	return s.repo.DeleteSessionByTokenHash(ctx, domain.HashToken(token))
}
