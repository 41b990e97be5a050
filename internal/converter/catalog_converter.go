package converter

import (
	"hotel-booking-backend/internal/delivery/dto"
	"hotel-booking-backend/internal/domain/entity"
)

// RoomTypeToResponse converts a RoomType entity to its DTO
func RoomTypeToResponse(roomType *entity.RoomType) *dto.RoomTypeResponse {
	if roomType == nil {
		return nil
	}
	return &dto.RoomTypeResponse{
		ID:          roomType.ID,
		Name:        roomType.Name,
		Description: roomType.Description,
	}
}

// RoomTypesToResponses converts a slice of RoomType entities
func RoomTypesToResponses(roomTypes []entity.RoomType) []dto.RoomTypeResponse {
	responses := make([]dto.RoomTypeResponse, len(roomTypes))
	for i, roomType := range roomTypes {
		responses[i] = *RoomTypeToResponse(&roomType)
	}
	return responses
}

// RoomClassToResponse converts a RoomClass entity; availableRooms is
// optional (only the catalog listing computes it)
func RoomClassToResponse(class *entity.RoomClass, availableRooms *int64) *dto.RoomClassResponse {
	if class == nil {
		return nil
	}
	response := &dto.RoomClassResponse{
		ID:             class.ID,
		RoomTypeID:     class.RoomTypeID,
		Name:           class.Name,
		Description:    class.Description,
		BasePrice:      class.BasePrice.StringFixed(2),
		Area:           class.Area,
		Capacity:       class.Capacity,
		Amenities:      class.AmenityList(),
		AvailableRooms: availableRooms,
	}
	if class.RoomType.ID != 0 {
		response.RoomTypeName = class.RoomType.Name
	}
	return response
}

// RoomToResponse converts a Room entity to its DTO
func RoomToResponse(room *entity.Room) *dto.RoomResponse {
	if room == nil {
		return nil
	}
	return &dto.RoomResponse{
		ID:          room.ID,
		RoomClassID: room.RoomClassID,
		RoomNumber:  room.RoomNumber,
		Status:      string(room.Status),
	}
}

// RoomsToResponses converts a slice of Room entities
func RoomsToResponses(rooms []entity.Room) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = *RoomToResponse(&room)
	}
	return responses
}

// ServiceToResponse converts a Service entity to its DTO
func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:          service.ID,
		Name:        service.Name,
		Description: service.Description,
		Price:       service.Price.StringFixed(2),
	}
}

// ServicesToResponses converts a slice of Service entities
func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i, service := range services {
		responses[i] = *ServiceToResponse(&service)
	}
	return responses
}
