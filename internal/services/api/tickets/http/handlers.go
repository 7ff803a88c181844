// Package http provides http transport for support tickets
package http

import (
	stdhttp "net/http"

	"marketflow/internal/modkit/httpkit"
	"marketflow/internal/services/api/tickets/domain"
	svc "marketflow/internal/services/api/tickets/service"
)

// Register mounts ticket endpoints; the router is already behind bearer auth
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.PostJSON[domain.StatusInput](r, "/{ticketID}/status", h.setStatus)
	httpkit.Delete(r, "/{ticketID}", h.remove)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /tickets Tickets ticketsList
// @Summary Support tickets, newest first
// @Tags Tickets
// @Produce json
// @Param q query string false "Free-text match over subject, message, category, owner"
// @Success 200 {array} domain.Ticket "ok"
// @Security BearerAuth
// @Router /tickets [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	in := domain.ListInput{Q: r.URL.Query().Get("q")}
	return h.svc.List(r.Context(), httpkit.Roles(r), in)
}

// swagger:route POST /tickets Tickets ticketsCreate
// @Summary Open a support ticket
// @Tags Tickets
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Ticket"
// @Success 201 {object} domain.Created "created"
// @Security BearerAuth
// @Router /tickets [post]
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

// swagger:route POST /tickets/{ticketID}/status Tickets ticketsSetStatus
// @Summary Set a ticket's lifecycle state
// @Tags Tickets
// @Accept json
// @Produce json
// @Param ticketID path string true "Ticket id"
// @Param payload body domain.StatusInput true "New state"
// @Success 200 {object} domain.Ticket "ok"
// @Security BearerAuth
// @Router /tickets/{ticketID}/status [post]
func (h *handlers) setStatus(r *stdhttp.Request, in domain.StatusInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	ticketID, err := httpkit.MustParam(r, "ticketID")
	if err != nil {
		return nil, err
	}
	return h.svc.SetStatus(r.Context(), uid, httpkit.Roles(r), ticketID, in.Status)
}

// swagger:route DELETE /tickets/{ticketID} Tickets ticketsDelete
// @Summary Delete a ticket
// @Tags Tickets
// @Produce json
// @Param ticketID path string true "Ticket id"
// @Success 204 "no content"
// @Security BearerAuth
// @Router /tickets/{ticketID} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	ticketID, err := httpkit.MustParam(r, "ticketID")
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), uid, httpkit.Roles(r), ticketID); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
