// Package domain holds types for the admin surface and the audit recorder port
package domain

// Action is a recorded audit action kind
type Action string

// Audit actions written to admin_activity_logs
const (
	ActionDelete       Action = "delete"
	ActionApprove      Action = "approve"
	ActionReject       Action = "reject"
	ActionAddRole      Action = "add_role"
	ActionRemoveRole   Action = "remove_role"
	ActionUpdate       Action = "update"
	ActionStatusChange Action = "status_change"
)

// AuditEvent is one privileged mutation to record
type AuditEvent struct {
	ActorID    string
	Action     Action
	TargetType string
	TargetID   string
	Details    string
}

// ActivityEntry is one audit row joined with the acting admin's profile
type ActivityEntry struct {
	ID         string `json:"id"`
	Action     string `json:"action"     example:"status_change"`
	TargetType string `json:"target_type" example:"service_request"`
	TargetID   string `json:"target_id"`
	Details    string `json:"details,omitempty"`
	AdminName  string `json:"admin_name" example:"Root Admin"`
	CreatedAt  string `json:"created_at" example:"2026-08-01T10:00:00Z"`
}

// UserRow is one profile with its role set for the admin user table
type UserRow struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FullName  string   `json:"full_name"`
	Roles     []string `json:"roles"`
	CreatedAt string   `json:"created_at"`
}

// DashboardView is the caller's canonical dashboard route plus capability flags
type DashboardView struct {
	Route        string       `json:"route" example:"/dashboard/admin"`
	Capabilities Capabilities `json:"capabilities"`
}

// Capabilities mirrors core access capability flags on the wire
type Capabilities struct {
	ManageRoles    bool `json:"manage_roles"`
	ManageListings bool `json:"manage_listings"`
	ManageRequests bool `json:"manage_requests"`
	ManageTickets  bool `json:"manage_tickets"`
}

// RoleGrantInput is the body for granting a role
type RoleGrantInput struct {
	Role string `json:"role" validate:"required,oneof=buyer vendor admin super_admin" example:"admin"`
}
