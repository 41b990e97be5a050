package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type DraftSelectionRequest struct {
	RoomClassID  uint   `json:"room_class_id" validate:"required,min=1"`
	CheckInDate  string `json:"check_in_date" validate:"required,stay_date"`
	CheckOutDate string `json:"check_out_date" validate:"required,stay_date"`
	Adults       int    `json:"adults" validate:"required,min=1"`
	Children     int    `json:"children" validate:"min=0"`
	ServiceIDs   []uint `json:"service_ids"`
}

type CheckoutRequest struct {
	DraftToken      string `json:"draft_token" validate:"required"`
	FullName        string `json:"full_name" validate:"required,max=255"`
	Email           string `json:"email" validate:"required,email"`
	PhoneNumber     string `json:"phone_number" validate:"max=20"`
	Nationality     string `json:"nationality" validate:"max=100"`
	SpecialRequests string `json:"special_requests"`
	PaymentMethod   string `json:"payment_method" validate:"required,oneof=BANK_TRANSFER"`
}

type EditBookingRequest struct {
	FullName        string `json:"full_name" validate:"required,max=255"`
	Email           string `json:"email" validate:"required,email"`
	PhoneNumber     string `json:"phone_number" validate:"max=20"`
	Nationality     string `json:"nationality" validate:"max=100"`
	SpecialRequests string `json:"special_requests"`
	ServiceIDs      []uint `json:"service_ids"`
}

type AssignRoomRequest struct {
	RoomID uint `json:"room_id" validate:"required,min=1"`
}

// Response DTOs

type QuoteResponse struct {
	Nights        int    `json:"nights"`
	RoomPrice     string `json:"room_price"`
	ServicesPrice string `json:"services_price"`
	TotalPrice    string `json:"total_price"`
}

type DraftResponse struct {
	Token     string         `json:"token"`
	ExpiresIn int64          `json:"expires_in"`
	Quote     *QuoteResponse `json:"quote"`
}

type BookingResponse struct {
	ID             uuid.UUID          `json:"id"`
	BookingCode    string             `json:"booking_code"`
	Status         string             `json:"status"`
	RoomClass      *RoomClassResponse `json:"room_class,omitempty"`
	AssignedRoom   *RoomResponse      `json:"assigned_room,omitempty"`
	GuestFullName  string             `json:"guest_full_name,omitempty"`
	GuestEmail     string             `json:"guest_email,omitempty"`
	CheckInDate    string             `json:"check_in_date"`
	CheckOutDate   string             `json:"check_out_date"`
	Nights         int                `json:"nights"`
	Adults         int                `json:"adults"`
	Children       int                `json:"children"`
	RoomPrice      string             `json:"room_price"`
	ServicesPrice  string             `json:"services_price"`
	TotalPrice     string             `json:"total_price"`
	PaymentMethod  string             `json:"payment_method"`
	IsLocked       bool               `json:"is_locked"`
	IsCancellable  bool               `json:"is_cancellable"`
	IsEditable     bool               `json:"is_editable"`
	IsPaymentReady bool               `json:"is_payment_ready"`
	Services       []ServiceResponse  `json:"services,omitempty"`
	ProofUploaded  bool               `json:"proof_uploaded"`
	PaymentDate    *time.Time         `json:"payment_date,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
