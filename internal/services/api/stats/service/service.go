// Package service contains dashboard stats workflows
package service

import (
	"context"

	"marketflow/internal/core/access"
	"marketflow/internal/modkit/repokit"
	perr "marketflow/internal/platform/errors"
	"marketflow/internal/platform/store"
	"marketflow/internal/services/api/stats/domain"
	"marketflow/internal/services/api/stats/repo"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	ch     store.Clickhouse
}

// New constructs a stats service; ch may be nil, in which case the view trend
// reports unavailable
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], ch store.Clickhouse) *Svc {
	if db == nil {
		panic("stats.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("stats.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, ch: ch}
}

// KPIs returns the admin dashboard headline numbers
func (s *Svc) KPIs(ctx context.Context, actorRoles []string) (domain.KPIs, error) {
	if err := requireAdmin(actorRoles); err != nil {
		return domain.KPIs{}, err
	}
	k, err := s.Repo.KPIs(ctx)
	if err != nil {
		return domain.KPIs{}, err
	}
	return domain.KPIs{
		TotalUsers:      k.TotalUsers,
		ActiveVendors:   k.ActiveVendors,
		PendingRequests: k.PendingRequests,
		OpenTickets:     k.OpenTickets,
	}, nil
}

// ViewTrend returns per-day listing views inside the window, ascending by day
func (s *Svc) ViewTrend(ctx context.Context, actorRoles []string, in domain.TrendInput) ([]domain.TrendRow, error) {
	if err := requireAdmin(actorRoles); err != nil {
		return nil, err
	}
	if s.ch == nil {
		return nil, perr.Unavailablef("view analytics store is not configured")
	}

	const sql = `
select toString(toDate(viewed_at)) as day, count() as views
from listing_views
where toDate(viewed_at) between toDate(?) and toDate(?)
and (? = '' or listing_id = ?)
group by day
order by day asc
`
	rows, err := s.ch.Query(ctx, sql, in.Start, in.End, in.ListingID, in.ListingID)
	if err != nil {
		return nil, perr.DBf("query listing views: %v", err)
	}
	defer rows.Close()

	var out []domain.TrendRow
	for rows.Next() {
		var tr domain.TrendRow
		var views uint64
		if err := rows.Scan(&tr.Day, &views); err != nil {
			return nil, perr.DBf("scan listing views: %v", err)
		}
		tr.Views = int64(views)
		out = append(out, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.DBf("read listing views: %v", err)
	}
	return out, nil
}

func requireAdmin(actorRoles []string) error {
	caps := access.CapabilitiesFor(access.NewRoleSet(actorRoles...))
	if !caps.ManageListings {
		return perr.Forbiddenf("dashboard stats require an admin role")
	}
	return nil
}
