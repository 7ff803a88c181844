// Package http provides http transport for admin
package http

import (
	stdhttp "net/http"

	"marketflow/internal/modkit/httpkit"
	"marketflow/internal/services/api/admin/domain"
	svc "marketflow/internal/services/api/admin/service"
)

// Register mounts admin endpoints on the given router
// the router passed here is already behind bearer auth; role gates live in the
// service layer
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/dashboard", h.dashboard)
	httpkit.Get(r, "/activity", h.activity)
	httpkit.Get(r, "/users", h.users)
	httpkit.PostJSON[domain.RoleGrantInput](r, "/users/{userID}/roles", h.grantRole)
	httpkit.Delete(r, "/users/{userID}/roles/{role}", h.revokeRole)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /admin/dashboard Admin adminDashboard
// @Summary Resolve the caller's dashboard route and capabilities
// @Tags Admin
// @Produce json
// @Success 200 {object} domain.DashboardView "ok"
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (h *handlers) dashboard(r *stdhttp.Request) (any, error) {
	return h.svc.Dashboard(r.Context(), httpkit.Roles(r))
}

// swagger:route GET /admin/activity Admin adminActivity
// @Summary Latest audit entries, newest first
// @Tags Admin
// @Produce json
// @Success 200 {array} domain.ActivityEntry "ok"
// @Security BearerAuth
// @Router /admin/activity [get]
func (h *handlers) activity(r *stdhttp.Request) (any, error) {
	return h.svc.Activity(r.Context(), httpkit.Roles(r))
}

// swagger:route GET /admin/users Admin adminUsers
// @Summary Recent profiles with role sets
// @Tags Admin
// @Produce json
// @Success 200 {array} domain.UserRow "ok"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *handlers) users(r *stdhttp.Request) (any, error) {
	return h.svc.Users(r.Context(), httpkit.Roles(r))
}

// swagger:route POST /admin/users/{userID}/roles Admin adminGrantRole
// @Summary Grant a role to a user (super_admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Param userID path string true "User id"
// @Param payload body domain.RoleGrantInput true "Role"
// @Success 200 "ok"
// @Security BearerAuth
// @Router /admin/users/{userID}/roles [post]
func (h *handlers) grantRole(r *stdhttp.Request, in domain.RoleGrantInput) (any, error) {
	actor, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	userID, err := httpkit.MustParam(r, "userID")
	if err != nil {
		return nil, err
	}
	if err := h.svc.GrantRole(r.Context(), actor, httpkit.Roles(r), userID, in.Role); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// swagger:route DELETE /admin/users/{userID}/roles/{role} Admin adminRevokeRole
// @Summary Remove a role from a user (super_admin only)
// @Tags Admin
// @Produce json
// @Param userID path string true "User id"
// @Param role path string true "Role"
// @Success 204 "no content"
// @Security BearerAuth
// @Router /admin/users/{userID}/roles/{role} [delete]
func (h *handlers) revokeRole(r *stdhttp.Request) (any, error) {
	actor, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	userID, err := httpkit.MustParam(r, "userID")
	if err != nil {
		return nil, err
	}
	role, err := httpkit.MustParam(r, "role")
	if err != nil {
		return nil, err
	}
	if err := h.svc.RevokeRole(r.Context(), actor, httpkit.Roles(r), userID, role); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
