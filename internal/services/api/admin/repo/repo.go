// Package repo provides postgres access for admin
package repo

import (
	"context"

	"marketflow/internal/modkit/repokit"
	perr "marketflow/internal/platform/errors"
)

// Repo is the minimal persistence surface for admin
type Repo interface {
	InsertActivity(ctx context.Context, actorID, action, targetType, targetID, details string) error
	Activity(ctx context.Context, limit int) ([]RowActivity, error)
	Users(ctx context.Context, limit int) ([]RowUser, error)
	GrantRole(ctx context.Context, userID, role string) error
	RevokeRole(ctx context.Context, userID, role string) error
}

// RowActivity is one audit row with the acting admin's name joined
type RowActivity struct {
	ID         string
	Action     string
	TargetType string
	TargetID   string
	Details    string
	AdminName  string
	CreatedAt  string
}

// RowUser is one profile row with aggregated roles
type RowUser struct {
	ID        string
	Email     string
	FullName  string
	Roles     []string
	CreatedAt string
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) InsertActivity(ctx context.Context, actorID, action, targetType, targetID, details string) error {
	const sql = `
insert into admin_activity_logs (admin_id, action, target_type, target_id, details)
values ($1, $2, $3, $4, nullif($5, ''))
`
	if _, err := r.q.Exec(ctx, sql, actorID, action, targetType, targetID, details); err != nil {
		return perr.FromPostgres(err, "insert activity")
	}
	return nil
}

func (r *queries) Activity(ctx context.Context, limit int) ([]RowActivity, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	const sql = `
select a.id::text, a.action, a.target_type, coalesce(a.target_id::text, ''), coalesce(a.details, ''),
coalesce(p.full_name, ''), a.created_at::text
from admin_activity_logs a
left join profiles p on p.id = a.admin_id
order by a.created_at desc
limit $1
`
	rows, err := r.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "load activity")
	}
	defer rows.Close()
	var out []RowActivity
	for rows.Next() {
		var rr RowActivity
		if err := rows.Scan(&rr.ID, &rr.Action, &rr.TargetType, &rr.TargetID, &rr.Details, &rr.AdminName, &rr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Users(ctx context.Context, limit int) ([]RowUser, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	const sql = `
select p.id::text, coalesce(p.email, ''), coalesce(p.full_name, ''),
coalesce(array_agg(ur.role::text order by ur.role) filter (where ur.role is not null), '{}'),
p.created_at::text
from profiles p
left join user_roles ur on ur.user_id = p.id
group by p.id
order by p.created_at desc
limit $1
`
	rows, err := r.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "load users")
	}
	defer rows.Close()
	var out []RowUser
	for rows.Next() {
		var rr RowUser
		if err := rows.Scan(&rr.ID, &rr.Email, &rr.FullName, &rr.Roles, &rr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) GrantRole(ctx context.Context, userID, role string) error {
	const sql = `
insert into user_roles (user_id, role)
values ($1, $2)
on conflict (user_id, role) do nothing
`
	if _, err := r.q.Exec(ctx, sql, userID, role); err != nil {
		return perr.FromPostgres(err, "grant role")
	}
	return nil
}

func (r *queries) RevokeRole(ctx context.Context, userID, role string) error {
	const sql = `delete from user_roles where user_id = $1 and role = $2`
	if _, err := r.q.Exec(ctx, sql, userID, role); err != nil {
		return perr.FromPostgres(err, "revoke role")
	}
	return nil
}
