package usecase

import (
	"context"
	"testing"

	"hotel-booking-backend/internal/domain/entity"
	"hotel-booking-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmPaymentSecondCallRejected(t *testing.T) {
	db, mock := newMockDB(t)
	log := newTestLogger()

	booking := &entity.Booking{
		ID:            uuid.New(),
		BookingCode:   "HB-20260115-7KQ2MD",
		GuestFullName: "Jane Doe",
		GuestEmail:    "jane@example.com",
		Status:        entity.BookingStatusPaymentPendingVerification,
	}
	bookings := &fakeBookingRepo{booking: booking, findByIDResult: booking, updateAffected: 1}
	notifier := &recordingNotifier{}
	audits := &fakeAuditService{}

	u := &staffBookingUsecase{
		db:            db,
		log:           log,
		bookingRepo:   bookings,
		notifications: service.NewNotificationService(notifier, log),
		audit:         audits,
	}
	staffID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectRollback()

	resp, err := u.ConfirmPayment(context.Background(), staffID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPaid), resp.Status)
	assert.Len(t, notifier.subjects, 1)

	// The booking is PAID now, so replaying the action must be rejected
	// and must not touch the row or mail the guest again.
	_, err = u.ConfirmPayment(context.Background(), staffID, booking.ID)
	require.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, entity.BookingStatusPaid, booking.Status)
	assert.Len(t, bookings.updateCalls, 1)
	assert.Len(t, notifier.subjects, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmPaymentLosesRaceOnStaleRead(t *testing.T) {
	db, mock := newMockDB(t)
	log := newTestLogger()

	// The locked read still shows PAYMENT_PENDING_VERIFICATION but a
	// concurrent confirm commits first, so the conditional update
	// matches zero rows.
	booking := &entity.Booking{
		ID:          uuid.New(),
		BookingCode: "HB-20260115-M3XRQT",
		GuestEmail:  "jane@example.com",
		Status:      entity.BookingStatusPaymentPendingVerification,
	}
	bookings := &fakeBookingRepo{booking: booking, findByIDResult: booking, updateAffected: 0}
	notifier := &recordingNotifier{}

	u := &staffBookingUsecase{
		db:            db,
		log:           log,
		bookingRepo:   bookings,
		notifications: service.NewNotificationService(notifier, log),
		audit:         &fakeAuditService{},
	}

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := u.ConfirmPayment(context.Background(), uuid.New(), booking.ID)
	require.ErrorIs(t, err, ErrIllegalTransition)
	assert.Len(t, bookings.updateCalls, 1)
	assert.Empty(t, notifier.subjects)

	require.NoError(t, mock.ExpectationsWereMet())
}
