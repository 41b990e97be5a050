package dto

// Request DTOs

type RoomTypeRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type RoomClassRequest struct {
	RoomTypeID  uint   `json:"room_type_id" validate:"required,min=1"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	BasePrice   string `json:"base_price" validate:"required"`
	Area        string `json:"area" validate:"max=50"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	Amenities   string `json:"amenities"`
}

type RoomRequest struct {
	RoomClassID uint   `json:"room_class_id" validate:"required,min=1"`
	RoomNumber  string `json:"room_number" validate:"required,max=10"`
}

type RoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE CLEANING MAINTENANCE"`
}

type ServiceRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
}

// Response DTOs

type RoomTypeResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type RoomClassResponse struct {
	ID             uint     `json:"id"`
	RoomTypeID     uint     `json:"room_type_id"`
	RoomTypeName   string   `json:"room_type_name,omitempty"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	BasePrice      string   `json:"base_price"`
	Area           string   `json:"area,omitempty"`
	Capacity       int      `json:"capacity"`
	Amenities      []string `json:"amenities,omitempty"`
	AvailableRooms *int64   `json:"available_rooms,omitempty"`
}

type RoomResponse struct {
	ID          uint   `json:"id"`
	RoomClassID uint   `json:"room_class_id"`
	RoomNumber  string `json:"room_number"`
	Status      string `json:"status"`
}

type ServiceResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
}
