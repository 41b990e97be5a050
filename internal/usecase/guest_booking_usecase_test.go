package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-booking-backend/config"
	"hotel-booking-backend/internal/delivery/dto"
	"hotel-booking-backend/internal/domain/entity"
	"hotel-booking-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutSingleWinnerForLastRoom(t *testing.T) {
	db, mock := newMockDB(t)
	log := newTestLogger()

	checkIn := entity.StartOfDay(time.Now().UTC().AddDate(0, 0, 10))
	drafts := &fakeDraftStore{selection: &entity.BookingSelection{
		RoomClassID: 1,
		CheckIn:     checkIn,
		CheckOut:    checkIn.AddDate(0, 0, 3),
		Adults:      2,
	}}
	classes := &fakeRoomClassRepo{class: &entity.RoomClass{
		ID:        1,
		Name:      "Deluxe",
		BasePrice: decimal.NewFromInt(500000),
		Capacity:  2,
	}}
	// One sellable room in the class: the overlap count decides who wins.
	rooms := &fakeRoomRepo{rooms: []entity.Room{
		{ID: 7, RoomClassID: 1, RoomNumber: "101", Status: entity.RoomStatusAvailable},
	}}
	bookings := &fakeBookingRepo{}

	u := &guestBookingUsecase{
		db:  db,
		log: log,
		bookingCfg: config.BookingConfig{
			ReviewWindow:    2 * time.Hour,
			UrgentThreshold: 24 * time.Hour,
			DraftTTL:        30 * time.Minute,
		},
		bookingRepo:   bookings,
		roomRepo:      rooms,
		roomClassRepo: classes,
		serviceRepo:   &fakeServiceRepo{},
		proofRepo:     &fakeProofRepo{},
		pricing:       service.NewPricingService(),
		drafts:        drafts,
		audit:         &fakeAuditService{},
	}
	request := &dto.CheckoutRequest{
		DraftToken:    "draft-token",
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		PaymentMethod: "BANK_TRANSFER",
	}

	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectRollback()

	resp, err := u.Checkout(context.Background(), nil, request)
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPendingReview), resp.Status)
	require.Len(t, bookings.created, 1)

	// Second checkout for the same dates finds the class fully booked
	// and must not create anything.
	_, err = u.Checkout(context.Background(), nil, request)
	require.ErrorIs(t, err, ErrNoRoomsAvailable)
	assert.Len(t, bookings.created, 1)
	assert.Len(t, drafts.deleted, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadPaymentProofReuploadDoesNotRenotify(t *testing.T) {
	db, mock := newMockDB(t)
	log := newTestLogger()

	booking := &entity.Booking{
		ID:            uuid.New(),
		BookingCode:   "HB-20260115-QW4ZNL",
		GuestFullName: "Jane Doe",
		GuestEmail:    "jane@example.com",
		Status:        entity.BookingStatusReadyForPayment,
	}
	bookings := &fakeBookingRepo{booking: booking, findByIDResult: booking, updateAffected: 1}
	proofs := &fakeProofRepo{}
	notifier := &recordingNotifier{}
	notifications := service.NewNotificationService(notifier, log)

	u := &guestBookingUsecase{
		db:            db,
		log:           log,
		bookingRepo:   bookings,
		proofRepo:     proofs,
		lifecycle:     service.NewBookingLifecycleService(db, log, bookings, notifications, 2*time.Hour),
		notifications: notifications,
		audit:         &fakeAuditService{},
	}

	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := u.UploadPaymentProof(context.Background(), booking.BookingCode, "proofs/first.jpg")
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPaymentPendingVerification), resp.Status)
	assert.Len(t, bookings.updateCalls, 1)
	assert.Len(t, notifier.subjects, 1)

	// Re-uploading while already in verification replaces the image but
	// must not re-run the transition or mail the guest a second time.
	resp, err = u.UploadPaymentProof(context.Background(), booking.BookingCode, "proofs/second.jpg")
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPaymentPendingVerification), resp.Status)
	assert.Len(t, proofs.upserts, 2)
	assert.Len(t, bookings.updateCalls, 1)
	assert.Len(t, notifier.subjects, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}
