package access

// Route is a canonical dashboard destination
type Route string

const (
	// RouteAdminDashboard serves admins and super admins
	RouteAdminDashboard Route = "/dashboard/admin"
	// RouteVendorDashboard serves vendors without admin roles
	RouteVendorDashboard Route = "/dashboard/vendor"
	// RouteBuyerDashboard is the fallback for buyers and unknown role sets
	RouteBuyerDashboard Route = "/dashboard/client"
)

// ResolveDashboard picks exactly one dashboard route for any role set,
// empty included. Precedence: admin roles, then vendor, then buyer fallback
func ResolveDashboard(roles RoleSet) Route {
	switch {
	case roles.Has(RoleSuperAdmin) || roles.Has(RoleAdmin):
		return RouteAdminDashboard
	case roles.Has(RoleVendor):
		return RouteVendorDashboard
	default:
		return RouteBuyerDashboard
	}
}

// CanManageRoles reports whether the role set may grant or revoke roles.
// Plain admins manage listings, requests, and tickets but never roles
func CanManageRoles(roles RoleSet) bool {
	return roles.Has(RoleSuperAdmin)
}

// Capabilities are the management surfaces visible to a role set
type Capabilities struct {
	ManageRoles    bool `json:"manage_roles"`
	ManageListings bool `json:"manage_listings"`
	ManageRequests bool `json:"manage_requests"`
	ManageTickets  bool `json:"manage_tickets"`
}

// CapabilitiesFor derives the visible management surfaces for a role set
func CapabilitiesFor(roles RoleSet) Capabilities {
	admin := roles.Has(RoleSuperAdmin) || roles.Has(RoleAdmin)
	return Capabilities{
		ManageRoles:    CanManageRoles(roles),
		ManageListings: admin,
		ManageRequests: admin,
		ManageTickets:  admin,
	}
}
