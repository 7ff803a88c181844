// Package domain holds DTOs for catalog http and service contracts
package domain

// BrowseInput is the filter and sort request for the explore surface
type BrowseInput struct {
	Category        string   `json:"category,omitempty"         validate:"omitempty,max=100"                    example:"Design"`
	Search          string   `json:"search,omitempty"           validate:"omitempty,max=200"                    example:"logo"`
	PriceMin        *float64 `json:"price_min,omitempty"        validate:"omitempty,gte=0"                      example:"50"`
	PriceMax        *float64 `json:"price_max,omitempty"        validate:"omitempty,gte=0"                      example:"500"`
	MaxDeliveryDays int      `json:"max_delivery_days,omitempty" validate:"omitempty,min=0,max=365"             example:"7"`
	VendorLevels    []string `json:"vendor_levels,omitempty"    validate:"omitempty,dive,oneof='Top Rated' 'Pro' 'Rising Star' 'New'"`
	Sort            string   `json:"sort,omitempty"             validate:"omitempty,oneof=recommended newest rating price-low price-high" example:"price-low"`
}

// VendorCard is the seller block rendered on a listing card
type VendorCard struct {
	Name     string `json:"name"     example:"Ana Design Studio"`
	Verified bool   `json:"verified" example:"true"`
	Level    string `json:"level"    example:"Top Rated"`
}

// ListingCard is one catalog record as served to clients
type ListingCard struct {
	ID           string     `json:"id"            example:"9f1c2e34-2f6a-4c1b-9a10-1c0ffee00001"`
	Title        string     `json:"title"         example:"Logo and brand kit"`
	Category     string     `json:"category"      example:"Design"`
	Price        float64    `json:"price"         example:"199"`
	Rating       float64    `json:"rating"        example:"4.9"`
	Reviews      int        `json:"reviews"       example:"124"`
	DeliveryDays int        `json:"delivery_days" example:"5"`
	Vendor       VendorCard `json:"vendor"`
}

// CategoryCount is one entry of the category sidebar
type CategoryCount struct {
	Category string `json:"category" example:"Design"`
	Listings int    `json:"listings" example:"12"`
}

// FavoriteToggle reports the state after a toggle
type FavoriteToggle struct {
	ListingID string `json:"listing_id"`
	Favorited bool   `json:"favorited"`
}
