// Package domain holds DTOs for support-ticket http and service contracts
package domain

// UnknownUser stands in when the ticket owner's profile is gone
const UnknownUser = "Unknown user"

// ListInput carries the optional free-text filter for the admin list
type ListInput struct {
	Q string `json:"q,omitempty" validate:"omitempty,max=200" example:"refund billing"`
}

// Ticket is one support ticket as served to the admin table
type Ticket struct {
	ID         string `json:"id"`
	Subject    string `json:"subject"    example:"Payment not arriving"`
	Message    string `json:"message,omitempty"`
	Category   string `json:"category"   example:"billing"`
	OwnerName  string `json:"owner_name" example:"Ben Buyer"`
	OwnerEmail string `json:"owner_email" example:"ben@example.com"`
	Status     string `json:"status"     example:"open"`
	CreatedAt  string `json:"created_at" example:"2026-08-01T10:00:00Z"`
}

// StatusInput sets a ticket's lifecycle state directly
type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved" example:"in_progress"`
}

// CreateInput opens a new ticket for the calling user
type CreateInput struct {
	Subject  string `json:"subject"  validate:"required,max=200"`
	Message  string `json:"message"  validate:"required,max=4000"`
	Category string `json:"category" validate:"omitempty,max=100" example:"billing"`
}

// Created reports the id of a newly opened ticket
type Created struct {
	ID     string `json:"id"`
	Status string `json:"status" example:"open"`
}
