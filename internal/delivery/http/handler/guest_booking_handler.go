package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"hotel-booking-backend/config"
	"hotel-booking-backend/internal/delivery/dto"
	"hotel-booking-backend/internal/delivery/http/middleware"
	"hotel-booking-backend/internal/service"
	"hotel-booking-backend/internal/usecase"
	"hotel-booking-backend/pkg/response"
	"hotel-booking-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const maxProofUploadSize = 5 << 20 // 5 MiB

// GuestBookingHandler exposes the booking funnel and the self-service
// endpoints keyed by booking code
type GuestBookingHandler struct {
	bookingUsecase usecase.GuestBookingUsecase
	validator      *validator.CustomValidator
	storageCfg     config.StorageConfig
}

func NewGuestBookingHandler(
	bookingUsecase usecase.GuestBookingUsecase,
	validator *validator.CustomValidator,
	storageCfg config.StorageConfig,
) *GuestBookingHandler {
	return &GuestBookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
		storageCfg:     storageCfg,
	}
}

// SaveDraft stores a funnel selection and returns the draft token
// @Summary Save a booking draft
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body dto.DraftSelectionRequest true "Selection"
// @Success 201 {object} response.Response
// @Router /bookings/draft [post]
func (h *GuestBookingHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var req dto.DraftSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	draft, err := h.bookingUsecase.SaveDraft(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrRoomClassNotFound:
			response.NotFound(w, "Room class not found")
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "One or more services not found")
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange,
			usecase.ErrCheckInInPast, usecase.ErrPartyExceedsCapacity,
			service.ErrInvalidStayDuration:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to save booking draft")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking draft saved successfully", draft)
}

// Checkout converts a draft into a booking. Works for both anonymous
// guests and logged-in customers; the optional auth middleware decides
// whether a customer ID is attached.
// @Summary Check out a booking draft
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body dto.CheckoutRequest true "Checkout Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/checkout [post]
func (h *GuestBookingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	var customerID *uuid.UUID
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		customerID = &userID
	}

	booking, err := h.bookingUsecase.Checkout(r.Context(), customerID, &req)
	if err != nil {
		switch err {
		case service.ErrDraftNotFound:
			response.NotFound(w, "Booking draft not found or expired")
		case usecase.ErrRoomClassNotFound:
			response.NotFound(w, "Room class not found")
		case usecase.ErrNoRoomsAvailable:
			response.Conflict(w, "No rooms available for the selected dates")
		case usecase.ErrCheckInInPast:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

// GetMyBookings lists the authenticated customer's bookings
// @Summary List my bookings
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /bookings/my [get]
func (h *GuestBookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookings, err := h.bookingUsecase.GetMyBookings(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list bookings")
		return
	}
	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// LookupByCode is the public tracking endpoint
// @Summary Look up a booking by code
// @Tags Bookings
// @Produce json
// @Param code path string true "Booking code"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookings/code/{code} [get]
func (h *GuestBookingHandler) LookupByCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	booking, err := h.bookingUsecase.LookupByCode(r.Context(), code)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		default:
			response.InternalServerError(w, "Failed to look up booking")
		}
		return
	}
	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

// Edit updates contact details and services while still editable
// @Summary Edit a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param code path string true "Booking code"
// @Param request body dto.EditBookingRequest true "Edit Request"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/code/{code} [put]
func (h *GuestBookingHandler) Edit(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req dto.EditBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.Edit(r.Context(), code, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "One or more services not found")
		case usecase.ErrBookingNotEditable:
			response.Conflict(w, "Booking can no longer be edited")
		default:
			response.InternalServerError(w, "Failed to edit booking")
		}
		return
	}
	response.Success(w, http.StatusOK, "Booking updated successfully", booking)
}

// Cancel is the guest self-service cancellation
// @Summary Cancel a booking
// @Tags Bookings
// @Produce json
// @Param code path string true "Booking code"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/code/{code} [delete]
func (h *GuestBookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	if err := h.bookingUsecase.Cancel(r.Context(), code); err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingNotCancellable:
			response.Conflict(w, "Booking can no longer be cancelled")
		default:
			response.InternalServerError(w, "Failed to cancel booking")
		}
		return
	}
	response.Success(w, http.StatusOK, "Booking cancelled successfully", nil)
}

// UploadPaymentProof accepts the transfer receipt as multipart form
// data under the "proof" field and stores it on disk
// @Summary Upload a payment proof
// @Tags Bookings
// @Accept multipart/form-data
// @Produce json
// @Param code path string true "Booking code"
// @Param proof formData file true "Payment proof image"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/code/{code}/payment-proof [post]
func (h *GuestBookingHandler) UploadPaymentProof(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	r.Body = http.MaxBytesReader(w, r.Body, maxProofUploadSize)
	if err := r.ParseMultipartForm(maxProofUploadSize); err != nil {
		response.BadRequest(w, "Uploaded file is too large or the form is malformed")
		return
	}

	file, header, err := r.FormFile("proof")
	if err != nil {
		response.BadRequest(w, "A proof file is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".pdf":
	default:
		response.BadRequest(w, "Proof must be a JPG, PNG, or PDF file")
		return
	}

	imagePath, err := h.saveProofFile(file, ext)
	if err != nil {
		response.InternalServerError(w, "Failed to store uploaded file")
		return
	}

	booking, err := h.bookingUsecase.UploadPaymentProof(r.Context(), code, imagePath)
	if err != nil {
		os.Remove(imagePath)
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrProofNotAccepted:
			response.Conflict(w, "Booking is not awaiting payment")
		default:
			response.InternalServerError(w, "Failed to upload payment proof")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment proof uploaded successfully", booking)
}

func (h *GuestBookingHandler) saveProofFile(file io.Reader, ext string) (string, error) {
	if err := os.MkdirAll(h.storageCfg.PaymentProofDir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	path := filepath.Join(h.storageCfg.PaymentProofDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
