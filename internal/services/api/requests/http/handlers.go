// Package http provides http transport for service requests
package http

import (
	stdhttp "net/http"

	"marketflow/internal/modkit/httpkit"
	"marketflow/internal/services/api/requests/domain"
	svc "marketflow/internal/services/api/requests/service"
)

// Register mounts request endpoints; the router is already behind bearer auth
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.PostJSON[domain.StatusInput](r, "/{requestID}/status", h.setStatus)
	httpkit.Delete(r, "/{requestID}", h.remove)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /requests Requests requestsList
// @Summary Service requests, newest first
// @Tags Requests
// @Produce json
// @Param q query string false "Free-text match over title, names, email"
// @Success 200 {array} domain.Request "ok"
// @Security BearerAuth
// @Router /requests [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	in := domain.ListInput{Q: r.URL.Query().Get("q")}
	return h.svc.List(r.Context(), httpkit.Roles(r), in)
}

// swagger:route POST /requests Requests requestsCreate
// @Summary Open a pending request for a service
// @Tags Requests
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Request"
// @Success 201 {object} domain.Created "created"
// @Security BearerAuth
// @Router /requests [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	out, err := h.svc.Create(r.Context(), uid, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// swagger:route POST /requests/{requestID}/status Requests requestsSetStatus
// @Summary Accept or reject a pending request
// @Tags Requests
// @Accept json
// @Produce json
// @Param requestID path string true "Request id"
// @Param payload body domain.StatusInput true "Decision"
// @Success 200 {object} domain.Request "ok"
// @Security BearerAuth
// @Router /requests/{requestID}/status [post]
func (h *handlers) setStatus(r *stdhttp.Request, in domain.StatusInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	requestID, err := httpkit.MustParam(r, "requestID")
	if err != nil {
		return nil, err
	}
	return h.svc.SetStatus(r.Context(), uid, httpkit.Roles(r), requestID, in.Status)
}

// swagger:route DELETE /requests/{requestID} Requests requestsDelete
// @Summary Delete a request
// @Tags Requests
// @Produce json
// @Param requestID path string true "Request id"
// @Success 204 "no content"
// @Security BearerAuth
// @Router /requests/{requestID} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	requestID, err := httpkit.MustParam(r, "requestID")
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), uid, httpkit.Roles(r), requestID); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
