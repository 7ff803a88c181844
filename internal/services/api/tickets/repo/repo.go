// Package repo provides postgres access for support tickets
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"marketflow/internal/modkit/repokit"
	perr "marketflow/internal/platform/errors"
)

// Repo is the minimal persistence surface for support tickets
type Repo interface {
	List(ctx context.Context) ([]RowTicket, error)
	Get(ctx context.Context, id string) (RowTicket, error)
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Create(ctx context.Context, ownerID, subject, message, category string) (string, error)
}

// RowTicket is one ticket row with its owner join; owner columns are blank
// when the profile is gone
type RowTicket struct {
	ID         string
	Subject    string
	Message    string
	Category   string
	OwnerName  string
	OwnerEmail string
	Status     string
	CreatedAt  string
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

const ticketCols = `
select t.id::text, t.subject, coalesce(t.message, ''), coalesce(t.category, ''),
coalesce(o.full_name, ''), coalesce(o.email, ''), t.status::text, t.created_at::text
from support_tickets t
left join profiles o on o.id = t.user_id
`

func scanTickets(rows repokit.Rows) ([]RowTicket, error) {
	defer rows.Close()
	var out []RowTicket
	for rows.Next() {
		var rt RowTicket
		if err := rows.Scan(
			&rt.ID,
			&rt.Subject,
			&rt.Message,
			&rt.Category,
			&rt.OwnerName,
			&rt.OwnerEmail,
			&rt.Status,
			&rt.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r *queries) List(ctx context.Context) ([]RowTicket, error) {
	const sql = ticketCols + `order by t.created_at desc, t.id desc`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "load tickets")
	}
	return scanTickets(rows)
}

func (r *queries) Get(ctx context.Context, id string) (RowTicket, error) {
	const sql = ticketCols + `where t.id = $1`
	var rt RowTicket
	err := r.q.QueryRow(ctx, sql, id).Scan(
		&rt.ID,
		&rt.Subject,
		&rt.Message,
		&rt.Category,
		&rt.OwnerName,
		&rt.OwnerEmail,
		&rt.Status,
		&rt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return RowTicket{}, perr.NotFoundf("ticket %s not found", id)
		}
		return RowTicket{}, perr.FromPostgres(err, "load ticket")
	}
	return rt, nil
}

func (r *queries) SetStatus(ctx context.Context, id, status string) error {
	const sql = `update support_tickets set status = $2, updated_at = now() where id = $1`
	tag, err := r.q.Exec(ctx, sql, id, status)
	if err != nil {
		return perr.FromPostgres(err, "update ticket status")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("ticket %s not found", id)
	}
	return nil
}

func (r *queries) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `delete from support_tickets where id = $1`, id)
	if err != nil {
		return perr.FromPostgres(err, "delete ticket")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("ticket %s not found", id)
	}
	return nil
}

func (r *queries) Create(ctx context.Context, ownerID, subject, message, category string) (string, error) {
	const sql = `
insert into support_tickets (user_id, subject, message, category, status)
values ($1, $2, $3, nullif($4, ''), 'open')
returning id::text
`
	var id string
	if err := r.q.QueryRow(ctx, sql, ownerID, subject, message, category).Scan(&id); err != nil {
		return "", perr.FromPostgresWithField(err, "create ticket")
	}
	return id, nil
}
