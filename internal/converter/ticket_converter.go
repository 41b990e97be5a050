package converter

import (
	"hotel-booking-backend/internal/delivery/dto"
	"hotel-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// TicketToResponse converts a Ticket entity to its DTO
func TicketToResponse(ticket *entity.Ticket) *dto.TicketResponse {
	if ticket == nil {
		return nil
	}

	response := &dto.TicketResponse{
		ID:          ticket.ID,
		Type:        string(ticket.Type),
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      string(ticket.Status),
		CreatedAt:   ticket.CreatedAt,
	}

	if ticket.Customer.ID != uuid.Nil {
		response.CustomerName = ticket.Customer.FullName
	}
	if ticket.Assignee != nil {
		response.AssigneeName = ticket.Assignee.FullName
	}

	for _, r := range ticket.Responses {
		response.Responses = append(response.Responses, dto.TicketMessageResponse{
			ID:            r.ID,
			ResponderName: r.Responder.FullName,
			Message:       r.Message,
			CreatedAt:     r.CreatedAt,
		})
	}

	return response
}

// TicketsToResponses converts a slice of Ticket entities
func TicketsToResponses(tickets []entity.Ticket) []dto.TicketResponse {
	responses := make([]dto.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = *TicketToResponse(&ticket)
	}
	return responses
}
