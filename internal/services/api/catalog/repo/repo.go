// Package repo provides postgres access for catalog
package repo

import (
	"context"

	"marketflow/internal/modkit/repokit"
	perr "marketflow/internal/platform/errors"
)

// Repo is the minimal persistence surface for catalog
type Repo interface {
	Published(ctx context.Context) ([]RowListing, error)
	Categories(ctx context.Context) ([]RowCategory, error)
	FavoriteIDs(ctx context.Context, userID string) ([]string, error)
	InsertFavorite(ctx context.Context, userID, listingID string) error
	DeleteFavorite(ctx context.Context, userID, listingID string) error
	FavoriteListings(ctx context.Context, userID string) ([]RowListing, error)
}

// RowListing is one listing row joined with its vendor profile
type RowListing struct {
	ID             string
	Title          string
	Category       string
	Price          float64
	Rating         float64
	Reviews        int
	DeliveryDays   int
	VendorName     string
	VendorVerified bool
	VendorLevel    string
}

// RowCategory is one category bucket with its listing count
type RowCategory struct {
	Category string
	Listings int
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

// listingCols is shared between Published and FavoriteListings
// ordered oldest-first so the engine's input order is insertion order
const listingCols = `
select s.id::text, s.title, s.category, s.price, s.rating, s.reviews_count, s.delivery_days,
coalesce(p.full_name, ''), coalesce(p.verified, false), coalesce(p.vendor_level, 'New')
from services s
left join profiles p on p.id = s.vendor_id
`

func scanListings(rows repokit.Rows) ([]RowListing, error) {
	defer rows.Close()
	var out []RowListing
	for rows.Next() {
		var rr RowListing
		if err := rows.Scan(
			&rr.ID,
			&rr.Title,
			&rr.Category,
			&rr.Price,
			&rr.Rating,
			&rr.Reviews,
			&rr.DeliveryDays,
			&rr.VendorName,
			&rr.VendorVerified,
			&rr.VendorLevel,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Published(ctx context.Context) ([]RowListing, error) {
	const sql = listingCols + `
where s.status = 'published'
order by s.created_at asc, s.id asc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "load published listings")
	}
	return scanListings(rows)
}

func (r *queries) Categories(ctx context.Context) ([]RowCategory, error) {
	const sql = `
select s.category, count(*)::int
from services s
where s.status = 'published'
group by s.category
order by s.category asc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "load categories")
	}
	defer rows.Close()
	var out []RowCategory
	for rows.Next() {
		var rr RowCategory
		if err := rows.Scan(&rr.Category, &rr.Listings); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) FavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	const sql = `select service_id::text from favorites where user_id = $1`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, perr.FromPostgres(err, "load favorite ids")
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *queries) InsertFavorite(ctx context.Context, userID, listingID string) error {
	const sql = `
insert into favorites (user_id, service_id)
values ($1, $2)
on conflict (user_id, service_id) do nothing
`
	if _, err := r.q.Exec(ctx, sql, userID, listingID); err != nil {
		return perr.FromPostgres(err, "insert favorite")
	}
	return nil
}

func (r *queries) DeleteFavorite(ctx context.Context, userID, listingID string) error {
	const sql = `delete from favorites where user_id = $1 and service_id = $2`
	if _, err := r.q.Exec(ctx, sql, userID, listingID); err != nil {
		return perr.FromPostgres(err, "delete favorite")
	}
	return nil
}

func (r *queries) FavoriteListings(ctx context.Context, userID string) ([]RowListing, error) {
	const sql = listingCols + `
join favorites f on f.service_id = s.id
where f.user_id = $1
order by f.created_at desc
`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, perr.FromPostgres(err, "load favorite listings")
	}
	return scanListings(rows)
}
