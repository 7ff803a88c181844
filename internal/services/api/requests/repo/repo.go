// Package repo provides postgres access for service requests
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"marketflow/internal/modkit/repokit"
	perr "marketflow/internal/platform/errors"
)

// Repo is the minimal persistence surface for service requests
type Repo interface {
	List(ctx context.Context) ([]RowRequest, error)
	Get(ctx context.Context, id string) (RowRequest, error)
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Create(ctx context.Context, clientID, serviceID, message string) (string, error)
}

// RowRequest is one request row with its joins; joined columns are blank when
// the referenced row is gone
type RowRequest struct {
	ID           string
	ServiceTitle string
	ClientName   string
	ClientEmail  string
	VendorName   string
	Status       string
	Message      string
	CreatedAt    string
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

const requestCols = `
select r.id::text, coalesce(s.title, ''), coalesce(c.full_name, ''), coalesce(c.email, ''),
coalesce(v.full_name, ''), r.status::text, coalesce(r.message, ''), r.created_at::text
from service_requests r
left join services s on s.id = r.service_id
left join profiles c on c.id = r.client_id
left join profiles v on v.id = s.vendor_id
`

func scanRequests(rows repokit.Rows) ([]RowRequest, error) {
	defer rows.Close()
	var out []RowRequest
	for rows.Next() {
		var rr RowRequest
		if err := rows.Scan(
			&rr.ID,
			&rr.ServiceTitle,
			&rr.ClientName,
			&rr.ClientEmail,
			&rr.VendorName,
			&rr.Status,
			&rr.Message,
			&rr.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) List(ctx context.Context) ([]RowRequest, error) {
	const sql = requestCols + `order by r.created_at desc, r.id desc`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "load requests")
	}
	return scanRequests(rows)
}

func (r *queries) Get(ctx context.Context, id string) (RowRequest, error) {
	const sql = requestCols + `where r.id = $1`
	var rr RowRequest
	err := r.q.QueryRow(ctx, sql, id).Scan(
		&rr.ID,
		&rr.ServiceTitle,
		&rr.ClientName,
		&rr.ClientEmail,
		&rr.VendorName,
		&rr.Status,
		&rr.Message,
		&rr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return RowRequest{}, perr.NotFoundf("request %s not found", id)
		}
		return RowRequest{}, perr.FromPostgres(err, "load request")
	}
	return rr, nil
}

func (r *queries) SetStatus(ctx context.Context, id, status string) error {
	const sql = `update service_requests set status = $2, updated_at = now() where id = $1`
	tag, err := r.q.Exec(ctx, sql, id, status)
	if err != nil {
		return perr.FromPostgres(err, "update request status")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("request %s not found", id)
	}
	return nil
}

func (r *queries) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `delete from service_requests where id = $1`, id)
	if err != nil {
		return perr.FromPostgres(err, "delete request")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("request %s not found", id)
	}
	return nil
}

func (r *queries) Create(ctx context.Context, clientID, serviceID, message string) (string, error) {
	const sql = `
insert into service_requests (client_id, service_id, message, status)
values ($1, $2, nullif($3, ''), 'pending')
returning id::text
`
	var id string
	if err := r.q.QueryRow(ctx, sql, clientID, serviceID, message).Scan(&id); err != nil {
		return "", perr.FromPostgresWithField(err, "create request")
	}
	return id, nil
}
