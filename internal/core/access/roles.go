// Package access maps principal role sets to dashboard routing and
// management capability decisions
package access

// Role is one membership a principal can hold
type Role string

const (
	// RoleBuyer is the default client role
	RoleBuyer Role = "buyer"
	// RoleVendor marks sellers with a vendor dashboard
	RoleVendor Role = "vendor"
	// RoleAdmin grants listing, request, and ticket management
	RoleAdmin Role = "admin"
	// RoleSuperAdmin additionally grants role management
	RoleSuperAdmin Role = "super_admin"
)

// ParseRole returns the known role for s, ok=false for anything else
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleBuyer, RoleVendor, RoleAdmin, RoleSuperAdmin:
		return Role(s), true
	}
	return "", false
}

// RoleSet is an unordered set of roles; unknown strings are simply absent
type RoleSet map[Role]struct{}

// NewRoleSet builds a RoleSet from raw role strings, dropping unknowns
func NewRoleSet(raw ...string) RoleSet {
	out := make(RoleSet, len(raw))
	for _, s := range raw {
		if r, ok := ParseRole(s); ok {
			out[r] = struct{}{}
		}
	}
	return out
}

// Has reports whether r is a member
func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

// Strings returns the member roles as raw strings in precedence order
func (s RoleSet) Strings() []string {
	out := make([]string, 0, len(s))
	for _, r := range []Role{RoleSuperAdmin, RoleAdmin, RoleVendor, RoleBuyer} {
		if s.Has(r) {
			out = append(out, string(r))
		}
	}
	return out
}
