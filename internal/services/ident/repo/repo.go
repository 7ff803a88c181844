// Package repo provides Postgres bindings for domain.Repo
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"marketflow/internal/modkit/repokit"
	perr "marketflow/internal/platform/errors"
	ptime "marketflow/internal/platform/time"
	"marketflow/internal/services/ident/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// Compile-time assertion: queries implements domain.Repo
var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

func (r *queries) SessionByTokenHash(ctx context.Context, hash string) (domain.Session, error) {
	const sql = `
select token_hash, user_id::text, expires_at
from sessions
where token_hash = $1
`
	var s domain.Session
	var exp stdsql.NullTime
	if err := r.q.QueryRow(ctx, sql, hash).Scan(&s.TokenHash, &s.UserID, &exp); err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return domain.Session{}, perr.Unauthorizedf("unknown session")
		}
		return domain.Session{}, perr.FromPostgres(err, "session lookup")
	}
	// null expiry stays nil; the session never expires
	s.ExpiresAt = ptime.Ptr(exp.Time)
	return s, nil
}

func (r *queries) ProfileByUser(ctx context.Context, userID string) (string, string, error) {
	const sql = `
select coalesce(email, ''), coalesce(full_name, '')
from profiles
where id = $1
`
	var email, name string
	if err := r.q.QueryRow(ctx, sql, userID).Scan(&email, &name); err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			// session without a profile row still resolves; names come back blank
			return "", "", nil
		}
		return "", "", perr.FromPostgres(err, "profile lookup")
	}
	return email, name, nil
}

func (r *queries) RolesByUser(ctx context.Context, userID string) ([]string, error) {
	const sql = `
select role::text
from user_roles
where user_id = $1
order by role
`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, perr.FromPostgres(err, "roles lookup")
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	return out, rows.Err()
}

func (r *queries) DeleteSessionByTokenHash(ctx context.Context, hash string) error {
	if _, err := r.q.Exec(ctx, `delete from sessions where token_hash = $1`, hash); err != nil {
		return perr.FromPostgres(err, "session delete")
	}
	return nil
}
