package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateTicketRequest struct {
	Type        string `json:"type" validate:"required,oneof=INQUIRY COMPLAINT SUPPORT"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
}

type AssignTicketRequest struct {
	AssigneeID uuid.UUID `json:"assignee_id" validate:"required"`
}

type TicketResponseRequest struct {
	Message string `json:"message" validate:"required"`
}

// Response DTOs

type TicketMessageResponse struct {
	ID            uint      `json:"id"`
	ResponderName string    `json:"responder_name"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}

type TicketResponse struct {
	ID           uuid.UUID               `json:"id"`
	Type         string                  `json:"type"`
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	Status       string                  `json:"status"`
	CustomerName string                  `json:"customer_name,omitempty"`
	AssigneeName string                  `json:"assignee_name,omitempty"`
	Responses    []TicketMessageResponse `json:"responses,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
}

type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
	Total   int              `json:"total"`
}
