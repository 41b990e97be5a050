package usecase

import (
	"context"
	"errors"

	"hotel-booking-backend/internal/converter"
	"hotel-booking-backend/internal/delivery/dto"
	"hotel-booking-backend/internal/domain/entity"
	"hotel-booking-backend/internal/domain/repository"
	"hotel-booking-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrIllegalTransition = errors.New("booking is not in a state that allows this action")
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomNotAvailable  = errors.New("room is not available")
	ErrRoomClassMismatch = errors.New("room does not belong to the booked room class")
	ErrRoomNotAssigned   = errors.New("booking has no assigned room")
)

// StaffBookingUsecase covers the back-office side of the lifecycle:
// review approval, payment verification, room assignment, and the
// front-desk check-in/check-out flow. Every action re-reads the booking
// under a row lock and transitions it with a conditional update, so a
// stale dashboard can never apply an action twice.
type StaffBookingUsecase interface {
	ListBookings(ctx context.Context, filter *entity.BookingFilter) (*dto.BookingListResponse, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error)
	ApproveReview(ctx context.Context, staffID uuid.UUID, id uuid.UUID) (*dto.BookingResponse, error)
	ConfirmPayment(ctx context.Context, staffID uuid.UUID, id uuid.UUID) (*dto.BookingResponse, error)
	AssignRoom(ctx context.Context, staffID uuid.UUID, id uuid.UUID, roomID uint) (*dto.BookingResponse, error)
	CheckIn(ctx context.Context, staffID uuid.UUID, id uuid.UUID) (*dto.BookingResponse, error)
	CheckOut(ctx context.Context, staffID uuid.UUID, id uuid.UUID) (*dto.BookingResponse, error)
	CancelByStaff(ctx context.Context, staffID uuid.UUID, id uuid.UUID) (*dto.BookingResponse, error)
}

type staffBookingUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	bookingRepo   repository.BookingRepository
	roomRepo      repository.RoomRepository
	lifecycle     *service.BookingLifecycleService
	notifications *service.NotificationService
	audit         service.AuditService
}

func NewStaffBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	lifecycle *service.BookingLifecycleService,
	notifications *service.NotificationService,
	audit service.AuditService,
) StaffBookingUsecase {
	return &staffBookingUsecase{
		db:            db,
		log:           log,
		bookingRepo:   bookingRepo,
		roomRepo:      roomRepo,
		lifecycle:     lifecycle,
		notifications: notifications,
		audit:         audit,
	}
}

func (u *staffBookingUsecase) ListBookings(ctx context.Context, filter *entity.BookingFilter) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}

	for i := range bookings {
		if err := u.lifecycle.Reconcile(ctx, &bookings[i]); err != nil {
			return nil, err
		}
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *staffBookingUsecase) GetBooking(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if err := u.lifecycle.Reconcile(ctx, booking); err != nil {
		return nil, err
	}
	return converter.BookingToResponse(booking), nil
}

// ApproveReview moves a reviewed booking to READY_FOR_PAYMENT so the
// guest is invited to transfer. Works on both locked and unlocked
// PENDING_REVIEW bookings.
func (u *staffBookingUsecase) ApproveReview(ctx context.Context, staffID uuid.UUID, id uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.transition(ctx, staffID, id,
		entity.BookingStatusPendingReview, entity.BookingStatusReadyForPayment,
		entity.AuditActionBookingApproveReview)
	if err != nil {
		return nil, err
	}
	u.notifications.NotifyStatusChange(booking, entity.BookingStatusReadyForPayment)
	return converter.BookingToResponse(booking), nil
}

// ConfirmPayment is the accountant verifying the uploaded proof
func (u *staffBookingUsecase) ConfirmPayment(ctx context.Context, staffID uuid.UUID, id uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.transition(ctx, staffID, id,
		entity.BookingStatusPaymentPendingVerification, entity.BookingStatusPaid,
		entity.AuditActionBookingConfirmPayment)
	if err != nil {
		return nil, err
	}
	u.notifications.NotifyStatusChange(booking, entity.BookingStatusPaid)
	return converter.BookingToResponse(booking), nil
}

// AssignRoom binds a concrete room to a paid booking. The room must be
// AVAILABLE and belong to the booked class. The room keeps its
// AVAILABLE status until check-in; the overlap count is what prevents
// the class from overselling in the meantime.
func (u *staffBookingUsecase) AssignRoom(ctx context.Context, staffID uuid.UUID, id uuid.UUID, roomID uint) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to lock booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status != entity.BookingStatusPaid {
		return nil, ErrIllegalTransition
	}

	room, err := u.roomRepo.FindByIDForUpdate(tx, roomID)
	if err != nil {
		u.log.Warnf("Failed to lock room %d: %+v", roomID, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.RoomClassID != booking.RoomClassID {
		return nil, ErrRoomClassMismatch
	}
	if !room.IsAvailable() {
		return nil, ErrRoomNotAvailable
	}

	affected, err := u.bookingRepo.UpdateStatus(tx, booking.ID,
		entity.BookingStatusPaid, entity.BookingStatusConfirmed,
		map[string]interface{}{"assigned_room_id": room.ID})
	if err != nil {
		u.log.Warnf("Failed to confirm booking %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrIllegalTransition
	}

	if err := u.audit.Log(tx, &staffID, entity.AuditActionBookingAssignRoom, entity.JSON{
		"booking_code": booking.BookingCode,
		"room_number":  room.RoomNumber,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit room assignment: %+v", err)
		return nil, err
	}

	u.log.Infof("Room assigned: code=%s room=%s", booking.BookingCode, room.RoomNumber)
	return u.GetBooking(ctx, id)
}

// CheckIn marks the guest's arrival and occupies the room
func (u *staffBookingUsecase) CheckIn(ctx context.Context, staffID uuid.UUID, id uuid.UUID) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to lock booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status != entity.BookingStatusConfirmed {
		return nil, ErrIllegalTransition
	}
	if booking.AssignedRoomID == nil {
		return nil, ErrRoomNotAssigned
	}

	affected, err := u.bookingRepo.UpdateStatus(tx, booking.ID,
		entity.BookingStatusConfirmed, entity.BookingStatusCheckedIn, nil)
	if err != nil {
		u.log.Warnf("Failed to check in booking %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrIllegalTransition
	}

	affected, err = u.roomRepo.UpdateStatus(tx, *booking.AssignedRoomID,
		entity.RoomStatusAvailable, entity.RoomStatusOccupied)
	if err != nil {
		u.log.Warnf("Failed to occupy room %d: %+v", *booking.AssignedRoomID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrRoomNotAvailable
	}

	if err := u.audit.Log(tx, &staffID, entity.AuditActionBookingCheckIn, entity.JSON{
		"booking_code": booking.BookingCode,
		"room_id":      *booking.AssignedRoomID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit check-in: %+v", err)
		return nil, err
	}

	u.log.Infof("Guest checked in: code=%s", booking.BookingCode)
	return u.GetBooking(ctx, id)
}

// CheckOut completes the stay and sends the room to housekeeping
func (u *staffBookingUsecase) CheckOut(ctx context.Context, staffID uuid.UUID, id uuid.UUID) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to lock booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status != entity.BookingStatusCheckedIn {
		return nil, ErrIllegalTransition
	}
	if booking.AssignedRoomID == nil {
		return nil, ErrRoomNotAssigned
	}

	affected, err := u.bookingRepo.UpdateStatus(tx, booking.ID,
		entity.BookingStatusCheckedIn, entity.BookingStatusCompleted, nil)
	if err != nil {
		u.log.Warnf("Failed to check out booking %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrIllegalTransition
	}

	if _, err := u.roomRepo.UpdateStatus(tx, *booking.AssignedRoomID,
		entity.RoomStatusOccupied, entity.RoomStatusCleaning); err != nil {
		u.log.Warnf("Failed to release room %d: %+v", *booking.AssignedRoomID, err)
		return nil, err
	}

	if err := u.audit.Log(tx, &staffID, entity.AuditActionBookingCheckOut, entity.JSON{
		"booking_code": booking.BookingCode,
		"room_id":      *booking.AssignedRoomID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit check-out: %+v", err)
		return nil, err
	}

	u.log.Infof("Guest checked out: code=%s", booking.BookingCode)
	return u.GetBooking(ctx, id)
}

// CancelByStaff cancels from any non-terminal state. Cancelling an
// in-house stay also sends the occupied room to housekeeping.
func (u *staffBookingUsecase) CancelByStaff(ctx context.Context, staffID uuid.UUID, id uuid.UUID) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to lock booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.IsTerminal() {
		return nil, ErrIllegalTransition
	}

	wasCheckedIn := booking.Status == entity.BookingStatusCheckedIn

	affected, err := u.bookingRepo.UpdateStatus(tx, booking.ID,
		booking.Status, entity.BookingStatusCancelled, nil)
	if err != nil {
		u.log.Warnf("Failed to cancel booking %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrIllegalTransition
	}

	if wasCheckedIn && booking.AssignedRoomID != nil {
		if _, err := u.roomRepo.UpdateStatus(tx, *booking.AssignedRoomID,
			entity.RoomStatusOccupied, entity.RoomStatusCleaning); err != nil {
			u.log.Warnf("Failed to release room %d: %+v", *booking.AssignedRoomID, err)
			return nil, err
		}
	}

	if err := u.audit.Log(tx, &staffID, entity.AuditActionBookingCancel, entity.JSON{
		"booking_code": booking.BookingCode,
		"by":           "staff",
		"from_status":  string(booking.Status),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit staff cancel: %+v", err)
		return nil, err
	}

	u.log.Infof("Booking cancelled by staff: code=%s", booking.BookingCode)
	return u.GetBooking(ctx, id)
}

// transition is the shared single-step conditional transition used by
// the actions that touch no other rows
func (u *staffBookingUsecase) transition(
	ctx context.Context,
	staffID uuid.UUID,
	id uuid.UUID,
	from, to entity.BookingStatus,
	auditAction string,
) (*entity.Booking, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to lock booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status != from {
		return nil, ErrIllegalTransition
	}

	affected, err := u.bookingRepo.UpdateStatus(tx, booking.ID, from, to, nil)
	if err != nil {
		u.log.Warnf("Failed to transition booking %s to %s: %+v", id, to, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrIllegalTransition
	}

	if err := u.audit.Log(tx, &staffID, auditAction, entity.JSON{
		"booking_code": booking.BookingCode,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transition to %s: %+v", to, err)
		return nil, err
	}

	u.log.Infof("Booking transitioned: code=%s %s -> %s", booking.BookingCode, from, to)

	updated, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil || updated == nil {
		booking.Status = to
		return booking, nil
	}
	return updated, nil
}
