package service

import (
	"errors"
	"testing"

	"hotel-booking-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type fakeNotifier struct {
	sent []sentMessage
	err  error
}

type sentMessage struct {
	recipient string
	subject   string
}

func (f *fakeNotifier) Send(recipient, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{recipient: recipient, subject: subject})
	return nil
}

func newTestBooking() *entity.Booking {
	return &entity.Booking{
		BookingCode:   "HB-20260115-ABCDEF",
		GuestFullName: "Guest Example",
		GuestEmail:    "guest@example.com",
		TotalPrice:    decimal.RequireFromString("1700000"),
	}
}

func TestNotifyBookingEventSends(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewNotificationService(notifier, logrus.New())

	svc.NotifyBookingEvent(newTestBooking(), entity.EventBookingLocked)
	svc.NotifyBookingEvent(newTestBooking(), entity.EventBookingExpired)

	assert.Len(t, notifier.sent, 2)
	assert.Equal(t, "guest@example.com", notifier.sent[0].recipient)
	assert.Contains(t, notifier.sent[0].subject, "HB-20260115-ABCDEF")
}

func TestNotifySwallowsDeliveryFailures(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("smtp unreachable")}
	svc := NewNotificationService(notifier, logrus.New())

	// must not panic or surface the error
	svc.NotifyBookingEvent(newTestBooking(), entity.EventBookingLocked)
	svc.NotifyStatusChange(newTestBooking(), entity.BookingStatusPaid)

	assert.Empty(t, notifier.sent)
}

func TestNotifySkipsBookingsWithoutContact(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewNotificationService(notifier, logrus.New())

	booking := newTestBooking()
	booking.GuestEmail = ""
	svc.NotifyBookingEvent(booking, entity.EventBookingLocked)

	assert.Empty(t, notifier.sent)
}

func TestNotifyStatusChangeMessages(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewNotificationService(notifier, logrus.New())

	svc.NotifyStatusChange(newTestBooking(), entity.BookingStatusReadyForPayment)
	svc.NotifyStatusChange(newTestBooking(), entity.BookingStatusPaymentPendingVerification)
	svc.NotifyStatusChange(newTestBooking(), entity.BookingStatusPaid)

	// statuses without a guest-facing message stay silent
	svc.NotifyStatusChange(newTestBooking(), entity.BookingStatusCheckedIn)

	assert.Len(t, notifier.sent, 3)
}
