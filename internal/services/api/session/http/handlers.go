// Package http provides session endpoints
package http

import (
	stdhttp "net/http"

	"marketflow/internal/modkit/httpkit"
	identdom "marketflow/internal/services/ident/domain"
)

// Register mounts session endpoints; the router is already behind bearer auth
func Register(r httpkit.Router, ident identdom.Ports) {
	h := &handlers{ident: ident}

	httpkit.Get(r, "/me", h.me)
	httpkit.Post(r, "/signout", h.signout)
}

type handlers struct{ ident identdom.Ports }

// MeResponse is the caller's resolved identity
type MeResponse struct {
	UserID   string   `json:"user_id"`
	Email    string   `json:"email"     example:"ben@example.com"`
	FullName string   `json:"full_name" example:"Ben Buyer"`
	Roles    []string `json:"roles"     example:"buyer"`
}

// swagger:route GET /session/me Session sessionMe
// @Summary Resolved identity for the presented token
// @Tags Session
// @Produce json
// @Success 200 {object} MeResponse "ok"
// @Security BearerAuth
// @Router /session/me [get]
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	token, err := httpkit.JWT(r)
	if err != nil {
		return nil, err
	}
	p, err := h.ident.Resolve(r.Context(), token)
	if err != nil {
		return nil, err
	}
	return MeResponse{UserID: p.UserID, Email: p.Email, FullName: p.FullName, Roles: p.Roles}, nil
}

// swagger:route POST /session/signout Session sessionSignout
// @Summary Delete the presented session so the token stops resolving
// @Tags Session
// @Produce json
// @Success 204 "no content"
// @Security BearerAuth
// @Router /session/signout [post]
func (h *handlers) signout(r *stdhttp.Request) (any, error) {
	token, err := httpkit.JWT(r)
	if err != nil {
		return nil, err
	}
	if err := h.ident.Revoke(r.Context(), token); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
