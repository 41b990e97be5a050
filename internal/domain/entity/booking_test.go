package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const reviewWindow = 2 * time.Hour

func newPendingReviewBooking(createdAt, checkIn time.Time) *Booking {
	return &Booking{
		BookingCode: "HB-20260115-TEST01",
		Status:      BookingStatusPendingReview,
		CreatedAt:   createdAt,
		CheckInDate: checkIn,
	}
}

func TestReconcileLocksAtReviewWindow(t *testing.T) {
	created := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)
	booking := newPendingReviewBooking(created, created.AddDate(0, 0, 10))

	// one minute before the deadline nothing happens
	events := booking.Reconcile(created.Add(reviewWindow-time.Minute), reviewWindow)
	assert.Empty(t, events)
	assert.False(t, booking.IsLocked)

	// exactly at the deadline the booking locks
	events = booking.Reconcile(created.Add(reviewWindow), reviewWindow)
	assert.Equal(t, []LifecycleEvent{EventBookingLocked}, events)
	assert.True(t, booking.IsLocked)
	assert.Equal(t, BookingStatusPendingReview, booking.Status)
}

func TestReconcileLocksWhenCheckInArrives(t *testing.T) {
	created := time.Date(2026, 1, 10, 23, 30, 0, 0, time.UTC)
	checkIn := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)
	booking := newPendingReviewBooking(created, checkIn)

	// check-in midnight arrives before the two-hour window elapses
	events := booking.Reconcile(checkIn, reviewWindow)
	assert.Equal(t, []LifecycleEvent{EventBookingLocked}, events)
	assert.True(t, booking.IsLocked)
}

func TestReconcileExpiresUnpaidUrgentBooking(t *testing.T) {
	created := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)
	booking := &Booking{
		Status:      BookingStatusPendingPayment,
		CreatedAt:   created,
		CheckInDate: created.AddDate(0, 0, 1),
	}

	// at exactly the deadline the booking survives
	events := booking.Reconcile(created.Add(reviewWindow), reviewWindow)
	assert.Empty(t, events)
	assert.Equal(t, BookingStatusPendingPayment, booking.Status)

	// a minute past the deadline it expires
	events = booking.Reconcile(created.Add(reviewWindow+time.Minute), reviewWindow)
	assert.Equal(t, []LifecycleEvent{EventBookingExpired}, events)
	assert.Equal(t, BookingStatusExpired, booking.Status)
}

func TestReconcileKeepsBookingWithProofUploaded(t *testing.T) {
	created := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)
	paymentDate := created.Add(time.Hour)
	booking := &Booking{
		Status:      BookingStatusPendingPayment,
		CreatedAt:   created,
		CheckInDate: created.AddDate(0, 0, 1),
		PaymentDate: &paymentDate,
	}

	events := booking.Reconcile(created.Add(3*reviewWindow), reviewWindow)
	assert.Empty(t, events)
	assert.Equal(t, BookingStatusPendingPayment, booking.Status)
}

func TestReconcileIgnoresTerminalBookings(t *testing.T) {
	created := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)
	for _, status := range []BookingStatus{BookingStatusCancelled, BookingStatusExpired, BookingStatusCompleted} {
		booking := &Booking{Status: status, CreatedAt: created, CheckInDate: created}
		events := booking.Reconcile(created.Add(24*time.Hour), reviewWindow)
		assert.Empty(t, events)
		assert.Equal(t, status, booking.Status)
	}
}

func TestReconcileIdempotentOnceLocked(t *testing.T) {
	created := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)
	booking := newPendingReviewBooking(created, created.AddDate(0, 0, 10))

	events := booking.Reconcile(created.Add(reviewWindow), reviewWindow)
	assert.Len(t, events, 1)

	events = booking.Reconcile(created.Add(2*reviewWindow), reviewWindow)
	assert.Empty(t, events)
}

func TestIsUrgentCheckIn(t *testing.T) {
	threshold := 24 * time.Hour
	now := time.Date(2026, 1, 10, 18, 0, 0, 0, time.UTC)

	// tomorrow's midnight is only six hours away
	tomorrow := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsUrgentCheckIn(tomorrow, now, threshold))

	// the day after is more than 24h out
	dayAfter := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsUrgentCheckIn(dayAfter, now, threshold))

	// same-day check-in is always urgent
	today := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsUrgentCheckIn(today, now, threshold))
}

func TestDateRangesOverlap(t *testing.T) {
	d := func(day int) time.Time {
		return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
	}

	// back-to-back stays share a date but not a night
	assert.False(t, DateRangesOverlap(d(1), d(5), d(5), d(8)))
	assert.False(t, DateRangesOverlap(d(5), d(8), d(1), d(5)))

	// one shared night is enough
	assert.True(t, DateRangesOverlap(d(1), d(6), d(5), d(8)))
	assert.True(t, DateRangesOverlap(d(5), d(8), d(1), d(6)))

	// containment
	assert.True(t, DateRangesOverlap(d(1), d(10), d(4), d(5)))
}

func TestGuestGuards(t *testing.T) {
	booking := &Booking{Status: BookingStatusPendingReview}
	assert.True(t, booking.IsCancellable())
	assert.True(t, booking.IsEditable())

	booking.IsLocked = true
	assert.False(t, booking.IsCancellable())
	assert.False(t, booking.IsEditable())

	booking.IsLocked = false
	booking.Status = BookingStatusReadyForPayment
	assert.False(t, booking.IsCancellable())
	assert.True(t, booking.IsPaymentReady())

	booking.Status = BookingStatusPaid
	assert.False(t, booking.IsPaymentReady())
}

func TestNights(t *testing.T) {
	booking := &Booking{
		CheckInDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 3, booking.Nights())
}

func TestContactFallsBackToGuestFields(t *testing.T) {
	booking := &Booking{
		GuestFullName: "Walk In",
		GuestEmail:    "walkin@example.com",
	}
	assert.Equal(t, "Walk In", booking.ContactName())
	assert.Equal(t, "walkin@example.com", booking.ContactEmail())

	booking.Customer = &User{FullName: "Account Holder", Email: "holder@example.com"}
	assert.Equal(t, "Account Holder", booking.ContactName())
	assert.Equal(t, "holder@example.com", booking.ContactEmail())
}
