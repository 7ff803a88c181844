// Package http provides http transport for catalog
package http

import (
	stdhttp "net/http"

	"marketflow/internal/modkit/httpkit"
	pnet "marketflow/internal/platform/net"
	"marketflow/internal/platform/net/middleware"
	"marketflow/internal/services/api/catalog/domain"
	svc "marketflow/internal/services/api/catalog/service"
)

// Register mounts catalog endpoints on the given router
// browse and categories are public; favorites require bearer auth
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}

	// optional auth so signed-in browsing tags view events with the caller
	httpkit.Identified(r, auth, func(ir httpkit.Router) {
		httpkit.PostJSON[domain.BrowseInput](ir, "/browse", h.browse)
	})
	httpkit.Get(r, "/categories", h.categories)

	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.Put(pr, "/favorites/{listingID}", h.toggleFavorite)
		httpkit.Get(pr, "/favorites", h.favorites)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /catalog/browse Catalog catalogBrowse
// @Summary Filter and sort the published catalog
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body domain.BrowseInput true "Filters"
// @Success 200 {array} domain.ListingCard "ok"
// @Router /catalog/browse [post]
func (h *handlers) browse(r *stdhttp.Request, in domain.BrowseInput) (any, error) {
	// anonymous browse is fine; the user id only tags view events
	return h.svc.Browse(r.Context(), in, pnet.UserID(r.Context()))
}

// swagger:route GET /catalog/categories Catalog catalogCategories
// @Summary Category buckets with listing counts
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.CategoryCount "ok"
// @Router /catalog/categories [get]
func (h *handlers) categories(r *stdhttp.Request) (any, error) {
	return h.svc.Categories(r.Context())
}

// swagger:route PUT /catalog/favorites/{listingID} Catalog catalogToggleFavorite
// @Summary Toggle a listing in the caller's favorites
// @Tags Catalog
// @Produce json
// @Param listingID path string true "Listing id"
// @Success 200 {object} domain.FavoriteToggle "ok"
// @Security BearerAuth
// @Router /catalog/favorites/{listingID} [put]
func (h *handlers) toggleFavorite(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	listingID, err := httpkit.MustParam(r, "listingID")
	if err != nil {
		return nil, err
	}
	return h.svc.ToggleFavorite(r.Context(), uid, listingID)
}

// swagger:route GET /catalog/favorites Catalog catalogFavorites
// @Summary List the caller's favorited listings
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.ListingCard "ok"
// @Security BearerAuth
// @Router /catalog/favorites [get]
func (h *handlers) favorites(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Favorites(r.Context(), uid)
}
