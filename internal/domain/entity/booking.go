package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle state of a booking.
// The string values are persisted as-is.
type BookingStatus string

const (
	BookingStatusPendingReview              BookingStatus = "PENDING_REVIEW"
	BookingStatusPendingPayment             BookingStatus = "PENDING_PAYMENT"
	BookingStatusReadyForPayment            BookingStatus = "READY_FOR_PAYMENT"
	BookingStatusPaymentPendingVerification BookingStatus = "PAYMENT_PENDING_VERIFICATION"
	BookingStatusPaid                       BookingStatus = "PAID"
	BookingStatusConfirmed                  BookingStatus = "CONFIRMED"
	BookingStatusCheckedIn                  BookingStatus = "CHECKED_IN"
	BookingStatusCompleted                  BookingStatus = "COMPLETED"
	BookingStatusExpired                    BookingStatus = "EXPIRED"
	BookingStatusCancelled                  BookingStatus = "CANCELLED"
)

// PaymentMethod represents how the guest pays. Bank transfer with a
// manually uploaded proof is the only supported method.
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// LifecycleEvent is emitted by Reconcile when a deadline has passed.
// Events drive guest notifications; they never carry errors back.
type LifecycleEvent string

const (
	EventBookingLocked  LifecycleEvent = "booking.locked"
	EventBookingExpired LifecycleEvent = "booking.expired"
)

// Booking is the central aggregate of the reservation flow. It reserves
// a tier (RoomClass) at creation time; a concrete Room is bound only
// when staff assign one after payment.
type Booking struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingCode    string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"booking_code"`
	CustomerID     *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	RoomClassID    uint       `gorm:"not null;index" json:"room_class_id"`
	AssignedRoomID *uint      `gorm:"index" json:"assigned_room_id,omitempty"`

	// Denormalized contact fields for bookings made without an account
	GuestFullName    string `gorm:"type:varchar(255)" json:"guest_full_name,omitempty"`
	GuestEmail       string `gorm:"type:varchar(255)" json:"guest_email,omitempty"`
	GuestPhoneNumber string `gorm:"type:varchar(20)" json:"guest_phone_number,omitempty"`
	GuestNationality string `gorm:"type:varchar(100)" json:"guest_nationality,omitempty"`

	CheckInDate  time.Time `gorm:"type:date;not null;index" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"type:date;not null" json:"check_out_date"`
	Adults       int       `gorm:"not null;default:1" json:"adults"`
	Children     int       `gorm:"not null;default:0" json:"children"`

	RoomPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"room_price"`
	ServicesPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"services_price"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`

	Status          BookingStatus `gorm:"type:varchar(30);not null;default:'PENDING_REVIEW';index" json:"status"`
	PaymentMethod   PaymentMethod `gorm:"type:varchar(20);not null;default:'BANK_TRANSFER'" json:"payment_method"`
	IsLocked        bool          `gorm:"not null;default:false" json:"is_locked"`
	SpecialRequests string        `gorm:"type:text" json:"special_requests,omitempty"`
	PaymentDate     *time.Time    `json:"payment_date,omitempty"`
	CreatedAt       time.Time     `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Customer           *User         `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	RoomClass          RoomClass     `gorm:"foreignKey:RoomClassID" json:"room_class,omitempty"`
	AssignedRoom       *Room         `gorm:"foreignKey:AssignedRoomID" json:"assigned_room,omitempty"`
	AdditionalServices []Service     `gorm:"many2many:booking_services" json:"additional_services,omitempty"`
	PaymentProof       *PaymentProof `gorm:"foreignKey:BookingID" json:"payment_proof,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// Nights returns the stay duration in nights (check-out minus check-in)
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// IsTerminal checks whether no further transitions are permitted
func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusExpired:
		return true
	}
	return false
}

// IsCancellable checks if the guest may still cancel: only an unlocked
// booking that sits in the review queue
func (b *Booking) IsCancellable() bool {
	return b.Status == BookingStatusPendingReview && !b.IsLocked
}

// IsEditable checks if the guest may still change contact details and
// services. Same condition as cancellation.
func (b *Booking) IsEditable() bool {
	return b.Status == BookingStatusPendingReview && !b.IsLocked
}

// IsPaymentReady checks if a payment proof upload is accepted
func (b *Booking) IsPaymentReady() bool {
	switch b.Status {
	case BookingStatusPendingReview, BookingStatusPendingPayment, BookingStatusReadyForPayment:
		return true
	}
	return false
}

// ContactName returns the customer's name, falling back to the
// denormalized guest field
func (b *Booking) ContactName() string {
	if b.Customer != nil && b.Customer.FullName != "" {
		return b.Customer.FullName
	}
	return b.GuestFullName
}

// ContactEmail returns the address notifications go to
func (b *Booking) ContactEmail() string {
	if b.Customer != nil && b.Customer.Email != "" {
		return b.Customer.Email
	}
	return b.GuestEmail
}

// IsUrgentCheckIn reports whether a booking starting on checkIn must be
// paid immediately: the check-in date is less than urgentThreshold away
// from now. Urgent bookings are created PENDING_PAYMENT and locked.
func IsUrgentCheckIn(checkIn, now time.Time, urgentThreshold time.Duration) bool {
	return StartOfDay(checkIn).Sub(now) < urgentThreshold
}

// StartOfDay truncates t to its calendar date in UTC
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateRangesOverlap reports whether [aIn, aOut) and [bIn, bOut) overlap
// using half-open interval semantics: a booking checking out on a date
// does not collide with one checking in the same date.
func DateRangesOverlap(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// Reconcile applies the lazily-evaluated deadlines to the booking and
// returns the lifecycle events that fired. It is a pure function of the
// booking and the clock, so the lazy read paths and the periodic sweep
// produce identical results.
//
// Rules:
//   - PENDING_REVIEW, unlocked: locked once reviewWindow has elapsed
//     since creation OR the check-in date has arrived, whichever first.
//     Locking does not change the status.
//   - PENDING_PAYMENT with no proof uploaded: EXPIRED once reviewWindow
//     has elapsed since creation.
//
// Callers persist the mutated booking and dispatch notifications for
// the returned events.
func (b *Booking) Reconcile(now time.Time, reviewWindow time.Duration) []LifecycleEvent {
	if b.IsTerminal() {
		return nil
	}

	var events []LifecycleEvent

	if b.Status == BookingStatusPendingReview && !b.IsLocked {
		deadline := b.CreatedAt.Add(reviewWindow)
		if !now.Before(deadline) || !now.Before(StartOfDay(b.CheckInDate)) {
			b.IsLocked = true
			events = append(events, EventBookingLocked)
		}
	}

	if b.Status == BookingStatusPendingPayment && b.PaymentDate == nil {
		deadline := b.CreatedAt.Add(reviewWindow)
		if now.After(deadline) {
			b.Status = BookingStatusExpired
			events = append(events, EventBookingExpired)
		}
	}

	return events
}
