package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hotel-booking-backend/internal/delivery/dto"
	"hotel-booking-backend/internal/delivery/http/middleware"
	"hotel-booking-backend/internal/usecase"
	"hotel-booking-backend/pkg/response"
	"hotel-booking-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// InventoryHandler exposes the back-office catalog management. Routes
// are guarded by the capability middleware; room status changes are
// additionally open to reception.
type InventoryHandler struct {
	inventoryUsecase usecase.InventoryUsecase
	validator        *validator.CustomValidator
}

func NewInventoryHandler(inventoryUsecase usecase.InventoryUsecase, validator *validator.CustomValidator) *InventoryHandler {
	return &InventoryHandler{
		inventoryUsecase: inventoryUsecase,
		validator:        validator,
	}
}

func (h *InventoryHandler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.RoomTypeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	roomType, err := h.inventoryUsecase.CreateRoomType(r.Context(), staffID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to create room type")
		return
	}
	response.Success(w, http.StatusCreated, "Room type created successfully", roomType)
}

func (h *InventoryHandler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	staffID, id, ok := h.staffAndID(w, r)
	if !ok {
		return
	}

	var req dto.RoomTypeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	roomType, err := h.inventoryUsecase.UpdateRoomType(r.Context(), staffID, id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update room type")
		return
	}
	response.Success(w, http.StatusOK, "Room type updated successfully", roomType)
}

func (h *InventoryHandler) DeleteRoomType(w http.ResponseWriter, r *http.Request) {
	staffID, id, ok := h.staffAndID(w, r)
	if !ok {
		return
	}

	if err := h.inventoryUsecase.DeleteRoomType(r.Context(), staffID, id); err != nil {
		h.writeError(w, err, "Failed to delete room type")
		return
	}
	response.Success(w, http.StatusOK, "Room type deleted successfully", nil)
}

func (h *InventoryHandler) CreateRoomClass(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.RoomClassRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	class, err := h.inventoryUsecase.CreateRoomClass(r.Context(), staffID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to create room class")
		return
	}
	response.Success(w, http.StatusCreated, "Room class created successfully", class)
}

func (h *InventoryHandler) UpdateRoomClass(w http.ResponseWriter, r *http.Request) {
	staffID, id, ok := h.staffAndID(w, r)
	if !ok {
		return
	}

	var req dto.RoomClassRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	class, err := h.inventoryUsecase.UpdateRoomClass(r.Context(), staffID, id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update room class")
		return
	}
	response.Success(w, http.StatusOK, "Room class updated successfully", class)
}

func (h *InventoryHandler) DeleteRoomClass(w http.ResponseWriter, r *http.Request) {
	staffID, id, ok := h.staffAndID(w, r)
	if !ok {
		return
	}

	if err := h.inventoryUsecase.DeleteRoomClass(r.Context(), staffID, id); err != nil {
		h.writeError(w, err, "Failed to delete room class")
		return
	}
	response.Success(w, http.StatusOK, "Room class deleted successfully", nil)
}

func (h *InventoryHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.inventoryUsecase.ListRooms(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list rooms")
		return
	}
	response.Success(w, http.StatusOK, "Rooms retrieved successfully", rooms)
}

func (h *InventoryHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.RoomRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	room, err := h.inventoryUsecase.CreateRoom(r.Context(), staffID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to create room")
		return
	}
	response.Success(w, http.StatusCreated, "Room created successfully", room)
}

func (h *InventoryHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	staffID, id, ok := h.staffAndID(w, r)
	if !ok {
		return
	}

	if err := h.inventoryUsecase.DeleteRoom(r.Context(), staffID, id); err != nil {
		h.writeError(w, err, "Failed to delete room")
		return
	}
	response.Success(w, http.StatusOK, "Room deleted successfully", nil)
}

// SetRoomStatus is the housekeeping toggle (AVAILABLE / CLEANING /
// MAINTENANCE)
func (h *InventoryHandler) SetRoomStatus(w http.ResponseWriter, r *http.Request) {
	staffID, id, ok := h.staffAndID(w, r)
	if !ok {
		return
	}

	var req dto.RoomStatusRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	room, err := h.inventoryUsecase.SetRoomStatus(r.Context(), staffID, id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to change room status")
		return
	}
	response.Success(w, http.StatusOK, "Room status updated successfully", room)
}

func (h *InventoryHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.ServiceRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	svc, err := h.inventoryUsecase.CreateService(r.Context(), staffID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to create service")
		return
	}
	response.Success(w, http.StatusCreated, "Service created successfully", svc)
}

func (h *InventoryHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	staffID, id, ok := h.staffAndID(w, r)
	if !ok {
		return
	}

	var req dto.ServiceRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	svc, err := h.inventoryUsecase.UpdateService(r.Context(), staffID, id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update service")
		return
	}
	response.Success(w, http.StatusOK, "Service updated successfully", svc)
}

func (h *InventoryHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	staffID, id, ok := h.staffAndID(w, r)
	if !ok {
		return
	}

	if err := h.inventoryUsecase.DeleteService(r.Context(), staffID, id); err != nil {
		h.writeError(w, err, "Failed to delete service")
		return
	}
	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}

func (h *InventoryHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

func (h *InventoryHandler) staffAndID(w http.ResponseWriter, r *http.Request) (uuid.UUID, uint, bool) {
	staffID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return uuid.Nil, 0, false
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.BadRequest(w, "Invalid ID")
		return uuid.Nil, 0, false
	}
	return staffID, uint(id), true
}

func (h *InventoryHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrRoomTypeNotFound:
		response.NotFound(w, "Room type not found")
	case usecase.ErrRoomClassNotFound:
		response.NotFound(w, "Room class not found")
	case usecase.ErrRoomNotFound:
		response.NotFound(w, "Room not found")
	case usecase.ErrServiceNotFoundID:
		response.NotFound(w, "Service not found")
	case usecase.ErrInvalidPrice:
		response.BadRequest(w, err.Error())
	case usecase.ErrRoomNumberTaken:
		response.Conflict(w, "Room number already exists")
	case usecase.ErrRoomOccupied:
		response.Conflict(w, "Occupied rooms change status through check-out")
	case usecase.ErrCatalogInUse:
		response.Conflict(w, "Record is referenced by existing data")
	default:
		response.InternalServerError(w, fallback)
	}
}
