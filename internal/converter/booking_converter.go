package converter

import (
	"hotel-booking-backend/internal/delivery/dto"
	"hotel-booking-backend/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:             booking.ID,
		BookingCode:    booking.BookingCode,
		Status:         string(booking.Status),
		GuestFullName:  booking.ContactName(),
		GuestEmail:     booking.ContactEmail(),
		CheckInDate:    booking.CheckInDate.Format("2006-01-02"),
		CheckOutDate:   booking.CheckOutDate.Format("2006-01-02"),
		Nights:         booking.Nights(),
		Adults:         booking.Adults,
		Children:       booking.Children,
		RoomPrice:      booking.RoomPrice.StringFixed(2),
		ServicesPrice:  booking.ServicesPrice.StringFixed(2),
		TotalPrice:     booking.TotalPrice.StringFixed(2),
		PaymentMethod:  string(booking.PaymentMethod),
		IsLocked:       booking.IsLocked,
		IsCancellable:  booking.IsCancellable(),
		IsEditable:     booking.IsEditable(),
		IsPaymentReady: booking.IsPaymentReady(),
		ProofUploaded:  booking.PaymentProof != nil,
		PaymentDate:    booking.PaymentDate,
		CreatedAt:      booking.CreatedAt,
		UpdatedAt:      booking.UpdatedAt,
	}

	if booking.RoomClass.ID != 0 {
		response.RoomClass = RoomClassToResponse(&booking.RoomClass, nil)
	}
	if booking.AssignedRoom != nil {
		response.AssignedRoom = RoomToResponse(booking.AssignedRoom)
	}
	if len(booking.AdditionalServices) > 0 {
		response.Services = ServicesToResponses(booking.AdditionalServices)
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to response DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := BookingToResponse(&booking)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
