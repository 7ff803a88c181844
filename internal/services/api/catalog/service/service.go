// Package service contains catalog workflows
package service

import (
	"context"

	corecat "marketflow/internal/core/catalog"
	"marketflow/internal/modkit/repokit"
	"marketflow/internal/platform/store"
	"marketflow/internal/services/api/catalog/domain"
	"marketflow/internal/services/api/catalog/repo"
)

// Service defines the catalog service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the catalog service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	views *viewRecorder
}

// New constructs a catalog service
// ch may be nil; view events are skipped then
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], ch store.Clickhouse) *Svc {
	if db == nil {
		panic("catalog.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("catalog.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		views:  newViewRecorder(ch),
	}
}

// Browse loads the published catalog and runs the filter engine over it
// userID may be empty for anonymous browsing
func (s *Svc) Browse(ctx context.Context, in domain.BrowseInput, userID string) ([]domain.ListingCard, error) {
	rows, err := s.Repo.Published(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]corecat.Listing, 0, len(rows))
	for _, r := range rows {
		listings = append(listings, toListing(r))
	}

	result := corecat.Apply(listings, toSpec(in))

	out := make([]domain.ListingCard, 0, len(result))
	for _, l := range result {
		out = append(out, toCard(l))
	}

	// view events are best-effort; the response never waits on them
	s.views.RecordAsync(result, userID)

	return out, nil
}

// Categories returns the category buckets with listing counts
func (s *Svc) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := s.Repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CategoryCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.CategoryCount{Category: r.Category, Listings: r.Listings})
	}
	return out, nil
}

// ToggleFavorite flips the favorite state of one listing for the caller
func (s *Svc) ToggleFavorite(ctx context.Context, userID, listingID string) (domain.FavoriteToggle, error) {
	var favorited bool
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		ids, err := r.FavoriteIDs(ctx, userID)
		if err != nil {
			return err
		}
		set := make(corecat.FavoriteSet, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}

		next := corecat.ToggleFavorite(set, listingID)
		favorited = next.Has(listingID)
		if favorited {
			return r.InsertFavorite(ctx, userID, listingID)
		}
		return r.DeleteFavorite(ctx, userID, listingID)
	})
	if err != nil {
		return domain.FavoriteToggle{}, err
	}
	return domain.FavoriteToggle{ListingID: listingID, Favorited: favorited}, nil
}

// Favorites lists the caller's favorited listings newest-favorited first
func (s *Svc) Favorites(ctx context.Context, userID string) ([]domain.ListingCard, error) {
	rows, err := s.Repo.FavoriteListings(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ListingCard, 0, len(rows))
	for _, r := range rows {
		out = append(out, toCard(toListing(r)))
	}
	return out, nil
}

func toListing(r repo.RowListing) corecat.Listing {
	return corecat.Listing{
		ID:           r.ID,
		Title:        r.Title,
		Category:     r.Category,
		Price:        r.Price,
		Rating:       r.Rating,
		Reviews:      r.Reviews,
		DeliveryDays: r.DeliveryDays,
		Vendor: corecat.Vendor{
			Name:     r.VendorName,
			Verified: r.VendorVerified,
			Level:    corecat.VendorLevel(r.VendorLevel),
		},
	}
}

func toSpec(in domain.BrowseInput) corecat.FilterSpec {
	levels := make([]corecat.VendorLevel, 0, len(in.VendorLevels))
	for _, l := range in.VendorLevels {
		levels = append(levels, corecat.VendorLevel(l))
	}
	return corecat.FilterSpec{
		Category:        in.Category,
		Search:          in.Search,
		PriceMin:        in.PriceMin,
		PriceMax:        in.PriceMax,
		MaxDeliveryDays: in.MaxDeliveryDays,
		VendorLevels:    levels,
		Sort:            corecat.SortKey(in.Sort),
	}
}

func toCard(l corecat.Listing) domain.ListingCard {
	return domain.ListingCard{
		ID:           l.ID,
		Title:        l.Title,
		Category:     l.Category,
		Price:        l.Price,
		Rating:       l.Rating,
		Reviews:      l.Reviews,
		DeliveryDays: l.DeliveryDays,
		Vendor: domain.VendorCard{
			Name:     l.Vendor.Name,
			Verified: l.Vendor.Verified,
			Level:    string(l.Vendor.Level),
		},
	}
}
