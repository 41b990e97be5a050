package entity

// BookingFilter narrows staff booking listings
type BookingFilter struct {
	Status      BookingStatus
	GuestName   string
	CheckInFrom string
	CheckInTo   string
}
