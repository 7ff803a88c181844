// Package domain holds DTOs for service-request http and service contracts
package domain

// Fallbacks used when a joined row was deleted out from under the request
const (
	UnknownService = "Unknown service"
	UnknownUser    = "Unknown user"
)

// ListInput carries the optional free-text filter for the admin list
type ListInput struct {
	Q string `json:"q,omitempty" validate:"omitempty,max=200" example:"logo ana"`
}

// Request is one service request as served to the admin table
type Request struct {
	ID           string `json:"id"`
	ServiceTitle string `json:"service_title" example:"Logo and brand kit"`
	ClientName   string `json:"client_name"   example:"Ben Buyer"`
	ClientEmail  string `json:"client_email"  example:"ben@example.com"`
	VendorName   string `json:"vendor_name"   example:"Ana Design Studio"`
	Status       string `json:"status"        example:"pending"`
	Message      string `json:"message,omitempty"`
	CreatedAt    string `json:"created_at"    example:"2026-08-01T10:00:00Z"`
}

// StatusInput sets a request's decision
type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected" example:"accepted"`
}

// CreateInput opens a new pending request for a service
type CreateInput struct {
	ServiceID string `json:"service_id" validate:"required,uuid4"`
	Message   string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

// Created reports the id of a newly opened request
type Created struct {
	ID     string `json:"id"`
	Status string `json:"status" example:"pending"`
}
