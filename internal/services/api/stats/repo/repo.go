// Package repo provides postgres access for dashboard stats
package repo

import (
	"context"

	"marketflow/internal/modkit/repokit"
	perr "marketflow/internal/platform/errors"
)

// Repo is the minimal persistence surface for dashboard stats
type Repo interface {
	KPIs(ctx context.Context) (RowKPIs, error)
}

// RowKPIs holds the headline counts in one round trip
type RowKPIs struct {
	TotalUsers      int64
	ActiveVendors   int64
	PendingRequests int64
	OpenTickets     int64
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

func (r *queries) KPIs(ctx context.Context) (RowKPIs, error) {
	// one scalar subquery per card keeps this a single round trip
	const sql = `
select
(select count(1) from profiles),
(select count(distinct vendor_id) from services where status = 'published'),
(select count(1) from service_requests where status = 'pending'),
(select count(1) from support_tickets where status = 'open')
`
	var k RowKPIs
	if err := r.q.QueryRow(ctx, sql).Scan(
		&k.TotalUsers,
		&k.ActiveVendors,
		&k.PendingRequests,
		&k.OpenTickets,
	); err != nil {
		return RowKPIs{}, perr.FromPostgres(err, "load dashboard kpis")
	}
	return k, nil
}
