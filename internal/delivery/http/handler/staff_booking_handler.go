package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"hotel-booking-backend/internal/delivery/dto"
	"hotel-booking-backend/internal/delivery/http/middleware"
	"hotel-booking-backend/internal/domain/entity"
	"hotel-booking-backend/internal/usecase"
	"hotel-booking-backend/pkg/response"
	"hotel-booking-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// StaffBookingHandler exposes the back-office booking dashboard
type StaffBookingHandler struct {
	staffUsecase usecase.StaffBookingUsecase
	validator    *validator.CustomValidator
}

func NewStaffBookingHandler(staffUsecase usecase.StaffBookingUsecase, validator *validator.CustomValidator) *StaffBookingHandler {
	return &StaffBookingHandler{
		staffUsecase: staffUsecase,
		validator:    validator,
	}
}

// ListBookings lists bookings with optional status / guest / date filters
// @Summary List all bookings
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param status query string false "Booking status"
// @Param guest query string false "Guest name search"
// @Param check_in_from query string false "Check-in from (YYYY-MM-DD)"
// @Param check_in_to query string false "Check-in to (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /staff/bookings [get]
func (h *StaffBookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &entity.BookingFilter{
		Status:      entity.BookingStatus(query.Get("status")),
		GuestName:   query.Get("guest"),
		CheckInFrom: query.Get("check_in_from"),
		CheckInTo:   query.Get("check_in_to"),
	}

	bookings, err := h.staffUsecase.ListBookings(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list bookings")
		return
	}
	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// GetBooking returns one booking with full detail
// @Summary Get a booking
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /staff/bookings/{id} [get]
func (h *StaffBookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	booking, err := h.staffUsecase.GetBooking(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		default:
			response.InternalServerError(w, "Failed to get booking")
		}
		return
	}
	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

// ApproveReview moves a reviewed booking to READY_FOR_PAYMENT
// @Summary Approve a booking review
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /staff/bookings/{id}/approve [post]
func (h *StaffBookingHandler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.staffUsecase.ApproveReview, "Booking approved for payment")
}

// ConfirmPayment verifies the uploaded proof and marks the booking PAID
// @Summary Confirm a booking payment
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /staff/bookings/{id}/confirm-payment [post]
func (h *StaffBookingHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.staffUsecase.ConfirmPayment, "Payment confirmed successfully")
}

// AssignRoom binds a concrete room to a paid booking
// @Summary Assign a room
// @Tags Staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.AssignRoomRequest true "Room Assignment"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /staff/bookings/{id}/assign-room [post]
func (h *StaffBookingHandler) AssignRoom(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req dto.AssignRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.staffUsecase.AssignRoom(r.Context(), staffID, id, req.RoomID)
	if err != nil {
		h.writeActionError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Room assigned successfully", booking)
}

// CheckIn marks the guest's arrival
// @Summary Check a guest in
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /staff/bookings/{id}/check-in [post]
func (h *StaffBookingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.staffUsecase.CheckIn, "Guest checked in successfully")
}

// CheckOut completes the stay
// @Summary Check a guest out
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /staff/bookings/{id}/check-out [post]
func (h *StaffBookingHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.staffUsecase.CheckOut, "Guest checked out successfully")
}

// Cancel cancels a booking on the guest's behalf
// @Summary Cancel a booking as staff
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /staff/bookings/{id}/cancel [post]
func (h *StaffBookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.staffUsecase.CancelByStaff, "Booking cancelled successfully")
}

// act runs the shared read-id-then-call pattern for the parameterless
// staff actions
func (h *StaffBookingHandler) act(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, staffID uuid.UUID, id uuid.UUID) (*dto.BookingResponse, error),
	message string,
) {
	staffID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	booking, err := action(r.Context(), staffID, id)
	if err != nil {
		h.writeActionError(w, err)
		return
	}
	response.Success(w, http.StatusOK, message, booking)
}

func (h *StaffBookingHandler) writeActionError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrBookingNotFound:
		response.NotFound(w, "Booking not found")
	case usecase.ErrRoomNotFound:
		response.NotFound(w, "Room not found")
	case usecase.ErrIllegalTransition:
		response.Conflict(w, "Booking is not in a state that allows this action")
	case usecase.ErrRoomNotAvailable:
		response.Conflict(w, "Room is not available")
	case usecase.ErrRoomClassMismatch:
		response.Conflict(w, "Room does not belong to the booked room class")
	case usecase.ErrRoomNotAssigned:
		response.Conflict(w, "Booking has no assigned room")
	default:
		response.InternalServerError(w, "Failed to perform booking action")
	}
}
