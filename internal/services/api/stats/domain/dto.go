// Package domain holds DTOs for stats http and service contracts
package domain

// Dates are ISO8601 days without timezone

// KPIs are the admin dashboard headline numbers
type KPIs struct {
	TotalUsers      int64 `json:"total_users"      example:"1280"`
	ActiveVendors   int64 `json:"active_vendors"   example:"64"`
	PendingRequests int64 `json:"pending_requests" example:"17"`
	OpenTickets     int64 `json:"open_tickets"     example:"5"`
}

// TrendInput bounds the listing-view trend window
type TrendInput struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2026-08-01"`
	End   string `json:"end"   validate:"required,datetime=2006-01-02" example:"2026-08-31"`
	// optional narrowing to one listing
	ListingID string `json:"listing_id,omitempty" validate:"omitempty,uuid4"`
}

// TrendRow is one day of listing views
type TrendRow struct {
	Day   string `json:"day"   example:"2026-08-01"`
	Views int64  `json:"views" example:"342"`
}
