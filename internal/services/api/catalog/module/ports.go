package module

import (
	"context"

	"marketflow/internal/services/api/catalog/domain"
	catalogsvc "marketflow/internal/services/api/catalog/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptCatalogPort adapts the catalog service to the domain port interface
type adaptCatalogPort struct{ svc catalogsvc.Service }

// Browse runs the filter engine over the published catalog
func (a adaptCatalogPort) Browse(ctx context.Context, in domain.BrowseInput, userID string) ([]domain.ListingCard, error) {
	return a.svc.Browse(ctx, in, userID)
}

// Categories returns category buckets with counts
func (a adaptCatalogPort) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	return a.svc.Categories(ctx)
}

// ToggleFavorite flips one listing's favorite state for a user
func (a adaptCatalogPort) ToggleFavorite(ctx context.Context, userID, listingID string) (domain.FavoriteToggle, error) {
	return a.svc.ToggleFavorite(ctx, userID, listingID)
}

// Favorites lists a user's favorited listings
func (a adaptCatalogPort) Favorites(ctx context.Context, userID string) ([]domain.ListingCard, error) {
	return a.svc.Favorites(ctx, userID)
}
