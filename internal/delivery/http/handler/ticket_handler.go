package handler

import (
	"encoding/json"
	"net/http"

	"hotel-booking-backend/internal/delivery/dto"
	"hotel-booking-backend/internal/delivery/http/middleware"
	"hotel-booking-backend/internal/usecase"
	"hotel-booking-backend/pkg/response"
	"hotel-booking-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// TicketHandler exposes the customer-support flow. Customers create and
// follow their own tickets; CRM staff work the full queue.
type TicketHandler struct {
	ticketUsecase usecase.TicketUsecase
	validator     *validator.CustomValidator
}

func NewTicketHandler(ticketUsecase usecase.TicketUsecase, validator *validator.CustomValidator) *TicketHandler {
	return &TicketHandler{
		ticketUsecase: ticketUsecase,
		validator:     validator,
	}
}

// Create opens a new ticket for the authenticated customer
// @Summary Create a support ticket
// @Tags Tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTicketRequest true "Ticket"
// @Success 201 {object} response.Response
// @Router /tickets [post]
func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ticket, err := h.ticketUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create ticket")
		return
	}
	response.Success(w, http.StatusCreated, "Ticket created successfully", ticket)
}

// GetMyTickets lists the authenticated customer's tickets
// @Summary List my tickets
// @Tags Tickets
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /tickets/my [get]
func (h *TicketHandler) GetMyTickets(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	tickets, err := h.ticketUsecase.GetMyTickets(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list tickets")
		return
	}
	response.Success(w, http.StatusOK, "Tickets retrieved successfully", tickets)
}

// Get returns one ticket; customers only see their own
// @Summary Get a ticket
// @Tags Tickets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, role, id, ok := h.identityAndID(w, r)
	if !ok {
		return
	}

	ticket, err := h.ticketUsecase.Get(r.Context(), userID, role, id)
	if err != nil {
		h.writeError(w, err, "Failed to get ticket")
		return
	}
	response.Success(w, http.StatusOK, "Ticket retrieved successfully", ticket)
}

// ListAll lists the full queue for CRM staff, optionally by status
// @Summary List all tickets
// @Tags Tickets
// @Security BearerAuth
// @Produce json
// @Param status query string false "Ticket status"
// @Success 200 {object} response.Response
// @Router /staff/tickets [get]
func (h *TicketHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.ticketUsecase.ListAll(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		response.InternalServerError(w, "Failed to list tickets")
		return
	}
	response.Success(w, http.StatusOK, "Tickets retrieved successfully", tickets)
}

// Assign routes a ticket to a staff member
// @Summary Assign a ticket
// @Tags Tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param request body dto.AssignTicketRequest true "Assignment"
// @Success 200 {object} response.Response
// @Router /staff/tickets/{id}/assign [post]
func (h *TicketHandler) Assign(w http.ResponseWriter, r *http.Request) {
	staffID, _, id, ok := h.identityAndID(w, r)
	if !ok {
		return
	}

	var req dto.AssignTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ticket, err := h.ticketUsecase.Assign(r.Context(), staffID, id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to assign ticket")
		return
	}
	response.Success(w, http.StatusOK, "Ticket assigned successfully", ticket)
}

// Respond appends a message to the ticket thread
// @Summary Respond to a ticket
// @Tags Tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param request body dto.TicketResponseRequest true "Message"
// @Success 200 {object} response.Response
// @Router /tickets/{id}/responses [post]
func (h *TicketHandler) Respond(w http.ResponseWriter, r *http.Request) {
	userID, isStaff, id, ok := h.identityAndID(w, r)
	if !ok {
		return
	}

	var req dto.TicketResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ticket, err := h.ticketUsecase.Respond(r.Context(), userID, isStaff, id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to respond to ticket")
		return
	}
	response.Success(w, http.StatusOK, "Response added successfully", ticket)
}

// Resolve closes a ticket
// @Summary Resolve a ticket
// @Tags Tickets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.Response
// @Router /staff/tickets/{id}/resolve [post]
func (h *TicketHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	staffID, _, id, ok := h.identityAndID(w, r)
	if !ok {
		return
	}

	ticket, err := h.ticketUsecase.Resolve(r.Context(), staffID, id)
	if err != nil {
		h.writeError(w, err, "Failed to resolve ticket")
		return
	}
	response.Success(w, http.StatusOK, "Ticket resolved successfully", ticket)
}

func (h *TicketHandler) identityAndID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool, uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return uuid.Nil, false, uuid.Nil, false
	}

	role, _ := middleware.GetRoleFromContext(r.Context())

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid ticket ID")
		return uuid.Nil, false, uuid.Nil, false
	}
	return userID, role.IsStaff(), id, true
}

func (h *TicketHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrTicketNotFound:
		response.NotFound(w, "Ticket not found")
	case usecase.ErrAssigneeNotFound:
		response.NotFound(w, "Assignee not found")
	case usecase.ErrTicketNotOwned:
		response.Forbidden(w, "Ticket belongs to another customer")
	case usecase.ErrTicketResolved:
		response.Conflict(w, "Ticket is already resolved")
	case usecase.ErrAssigneeNotStaff:
		response.BadRequest(w, "Assignee must be a staff account")
	default:
		response.InternalServerError(w, fallback)
	}
}
