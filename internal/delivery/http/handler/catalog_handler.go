package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hotel-booking-backend/internal/delivery/dto"
	"hotel-booking-backend/internal/usecase"
	"hotel-booking-backend/pkg/response"
	"hotel-booking-backend/pkg/validator"

	"github.com/gorilla/mux"
)

// CatalogHandler serves the public browsing endpoints. None of them
// require authentication.
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	validator      *validator.CustomValidator
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, validator *validator.CustomValidator) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		validator:      validator,
	}
}

// ListRoomTypes lists the top-level room categories
// @Summary List room types
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /room-types [get]
func (h *CatalogHandler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	roomTypes, err := h.catalogUsecase.ListRoomTypes(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list room types")
		return
	}
	response.Success(w, http.StatusOK, "Room types retrieved successfully", roomTypes)
}

// ListRoomClasses lists bookable tiers, optionally with per-range
// availability via check_in/check_out query params
// @Summary List room classes with availability
// @Tags Catalog
// @Produce json
// @Param check_in query string false "Check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /room-classes [get]
func (h *CatalogHandler) ListRoomClasses(w http.ResponseWriter, r *http.Request) {
	checkIn := r.URL.Query().Get("check_in")
	checkOut := r.URL.Query().Get("check_out")

	classes, err := h.catalogUsecase.ListRoomClasses(r.Context(), checkIn, checkOut)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange, usecase.ErrCheckInInPast:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to list room classes")
		}
		return
	}
	response.Success(w, http.StatusOK, "Room classes retrieved successfully", classes)
}

// GetRoomClass returns one tier with its current availability
// @Summary Get a room class
// @Tags Catalog
// @Produce json
// @Param id path int true "Room class ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /room-classes/{id} [get]
func (h *CatalogHandler) GetRoomClass(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.BadRequest(w, "Invalid room class ID")
		return
	}

	class, err := h.catalogUsecase.GetRoomClass(r.Context(), uint(id))
	if err != nil {
		switch err {
		case usecase.ErrRoomClassNotFound:
			response.NotFound(w, "Room class not found")
		default:
			response.InternalServerError(w, "Failed to get room class")
		}
		return
	}
	response.Success(w, http.StatusOK, "Room class retrieved successfully", class)
}

// ListServices lists the bookable add-on services
// @Summary List services
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /services [get]
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogUsecase.ListServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list services")
		return
	}
	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

// Quote prices a selection without creating anything
// @Summary Price a stay selection
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.DraftSelectionRequest true "Selection"
// @Success 200 {object} response.Response
// @Router /quote [post]
func (h *CatalogHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req dto.DraftSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	quote, err := h.catalogUsecase.Quote(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrRoomClassNotFound:
			response.NotFound(w, "Room class not found")
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "One or more services not found")
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange, usecase.ErrCheckInInPast:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to calculate quote")
		}
		return
	}
	response.Success(w, http.StatusOK, "Quote calculated successfully", quote)
}
