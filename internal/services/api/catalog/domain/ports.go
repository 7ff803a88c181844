package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Browse(ctx context.Context, in BrowseInput, userID string) ([]ListingCard, error)
	Categories(ctx context.Context) ([]CategoryCount, error)
	ToggleFavorite(ctx context.Context, userID, listingID string) (FavoriteToggle, error)
	Favorites(ctx context.Context, userID string) ([]ListingCard, error)
}
