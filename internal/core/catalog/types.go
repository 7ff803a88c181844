// Package catalog implements the listing filter and sort engine used by the
// explore and admin surfaces
package catalog

// VendorLevel is the seller tier shown on listing cards
type VendorLevel string

const (
	// LevelTopRated is the highest seller tier
	LevelTopRated VendorLevel = "Top Rated"
	// LevelPro is the professional seller tier
	LevelPro VendorLevel = "Pro"
	// LevelRisingStar marks fast-growing new sellers
	LevelRisingStar VendorLevel = "Rising Star"
	// LevelNew is the default tier for fresh accounts
	LevelNew VendorLevel = "New"
)

// Levels returns the fixed vendor level set in display order
func Levels() []VendorLevel {
	return []VendorLevel{LevelTopRated, LevelPro, LevelRisingStar, LevelNew}
}

// Vendor is the seller metadata carried on a listing
type Vendor struct {
	Name     string
	Verified bool
	Level    VendorLevel
}

// Listing is one catalog record as materialized for a render cycle
// Immutable once fetched; the engine never writes through it
type Listing struct {
	ID           string
	Title        string
	Category     string
	Price        float64
	Rating       float64
	Reviews      int
	DeliveryDays int
	Vendor       Vendor
}

// SortKey selects the ordering applied after filtering
type SortKey string

const (
	// SortRecommended preserves the input order
	SortRecommended SortKey = "recommended"
	// SortNewest reverses the input order (catalogs load oldest-first)
	SortNewest SortKey = "newest"
	// SortRating orders by rating descending
	SortRating SortKey = "rating"
	// SortPriceLow orders by price ascending
	SortPriceLow SortKey = "price-low"
	// SortPriceHigh orders by price descending
	SortPriceHigh SortKey = "price-high"
)

// CategoryAll disables category filtering
const CategoryAll = "All"

// FilterSpec is the set of user-chosen constraints for one Apply call
// Zero value means no filtering and recommended order
type FilterSpec struct {
	// Category keeps records whose category matches; "" or "All" keeps everything
	Category string
	// Search is a case-insensitive substring match over title, vendor name,
	// and category
	Search string
	// PriceMin and PriceMax are inclusive bounds; nil means unbounded
	PriceMin *float64
	PriceMax *float64
	// MaxDeliveryDays keeps records with delivery at most this many days;
	// 0 means any
	MaxDeliveryDays int
	// VendorLevels keeps records whose vendor level is a member; empty keeps
	// everything
	VendorLevels []VendorLevel
	// Sort selects the ordering; unknown or empty falls back to recommended
	Sort SortKey
}
