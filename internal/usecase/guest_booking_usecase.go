package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"hotel-booking-backend/config"
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
	ErrBookingNotFound       = errors.New("booking not found")
	ErrRoomClassNotFound     = errors.New("room class not found")
	ErrServiceNotFound       = errors.New("one or more services not found")
	ErrInvalidDateFormat     = errors.New("dates must use the YYYY-MM-DD format")
	ErrInvalidDateRange      = errors.New("check-out must be after check-in")
	ErrCheckInInPast         = errors.New("check-in date must not be in the past")
	ErrPartyExceedsCapacity  = errors.New("party size exceeds the room capacity")
	ErrNoRoomsAvailable      = errors.New("no rooms available for the selected dates")
	ErrBookingNotEditable    = errors.New("booking can no longer be edited")
	ErrBookingNotCancellable = errors.New("booking can no longer be cancelled")
	ErrProofNotAccepted      = errors.New("booking is not awaiting payment")
)

const bookingCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GuestBookingUsecase drives the guest-facing funnel: draft a selection,
// check out into a real booking, then track it by booking code. Guests
// without an account are identified by the code alone.
type GuestBookingUsecase interface {
	SaveDraft(ctx context.Context, request *dto.DraftSelectionRequest) (*dto.DraftResponse, error)
	Checkout(ctx context.Context, customerID *uuid.UUID, request *dto.CheckoutRequest) (*dto.BookingResponse, error)
	GetMyBookings(ctx context.Context, customerID uuid.UUID) (*dto.BookingListResponse, error)
	LookupByCode(ctx context.Context, code string) (*dto.BookingResponse, error)
	Edit(ctx context.Context, code string, request *dto.EditBookingRequest) (*dto.BookingResponse, error)
	Cancel(ctx context.Context, code string) error
	UploadPaymentProof(ctx context.Context, code string, imagePath string) (*dto.BookingResponse, error)
}

type guestBookingUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	bookingCfg    config.BookingConfig
	bookingRepo   repository.BookingRepository
	roomRepo      repository.RoomRepository
	roomClassRepo repository.RoomClassRepository
	serviceRepo   repository.ServiceRepository
	proofRepo     repository.PaymentProofRepository
	pricing       *service.PricingService
	drafts        service.DraftStore
	lifecycle     *service.BookingLifecycleService
	notifications *service.NotificationService
	audit         service.AuditService
}

func NewGuestBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingCfg config.BookingConfig,
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	roomClassRepo repository.RoomClassRepository,
	serviceRepo repository.ServiceRepository,
	proofRepo repository.PaymentProofRepository,
	pricing *service.PricingService,
	drafts service.DraftStore,
	lifecycle *service.BookingLifecycleService,
	notifications *service.NotificationService,
	audit service.AuditService,
) GuestBookingUsecase {
	return &guestBookingUsecase{
		db:            db,
		log:           log,
		bookingCfg:    bookingCfg,
		bookingRepo:   bookingRepo,
		roomRepo:      roomRepo,
		roomClassRepo: roomClassRepo,
		serviceRepo:   serviceRepo,
		proofRepo:     proofRepo,
		pricing:       pricing,
		drafts:        drafts,
		lifecycle:     lifecycle,
		notifications: notifications,
		audit:         audit,
	}
}

// SaveDraft validates the selection, prices it, and stores it in Redis
// under an opaque token the client carries to checkout.
func (u *guestBookingUsecase) SaveDraft(ctx context.Context, request *dto.DraftSelectionRequest) (*dto.DraftResponse, error) {
	checkIn, checkOut, err := parseStayDates(request.CheckInDate, request.CheckOutDate)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	class, err := u.roomClassRepo.FindByID(db, request.RoomClassID)
	if err != nil {
		u.log.Warnf("Failed to find room class %d: %+v", request.RoomClassID, err)
		return nil, err
	}
	if class == nil {
		return nil, ErrRoomClassNotFound
	}

	if request.Adults+request.Children > class.Capacity {
		return nil, ErrPartyExceedsCapacity
	}

	services, err := u.serviceRepo.FindByIDs(db, request.ServiceIDs)
	if err != nil {
		u.log.Warnf("Failed to find services %v: %+v", request.ServiceIDs, err)
		return nil, err
	}
	if len(services) != len(request.ServiceIDs) {
		return nil, ErrServiceNotFound
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	quote, err := u.pricing.Calculate(class, nights, services)
	if err != nil {
		return nil, err
	}

	selection := &entity.BookingSelection{
		RoomClassID: request.RoomClassID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      request.Adults,
		Children:    request.Children,
		ServiceIDs:  request.ServiceIDs,
	}

	token, err := u.drafts.Save(ctx, selection)
	if err != nil {
		return nil, err
	}

	return &dto.DraftResponse{
		Token:     token,
		ExpiresIn: int64(u.bookingCfg.DraftTTL.Seconds()),
		Quote: &dto.QuoteResponse{
			Nights:        nights,
			RoomPrice:     quote.RoomPrice.StringFixed(2),
			ServicesPrice: quote.ServicesPrice.StringFixed(2),
			TotalPrice:    quote.TotalPrice.StringFixed(2),
		},
	}, nil
}

// Checkout turns a draft into a booking. Availability is decided inside
// a transaction that row-locks the class's AVAILABLE rooms, so two
// concurrent checkouts for the last slot cannot both succeed.
func (u *guestBookingUsecase) Checkout(ctx context.Context, customerID *uuid.UUID, request *dto.CheckoutRequest) (*dto.BookingResponse, error) {
	selection, err := u.drafts.Get(ctx, request.DraftToken)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if selection.CheckIn.Before(entity.StartOfDay(now)) {
		return nil, ErrCheckInInPast
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	class, err := u.roomClassRepo.FindByID(tx, selection.RoomClassID)
	if err != nil {
		u.log.Warnf("Failed to find room class %d: %+v", selection.RoomClassID, err)
		return nil, err
	}
	if class == nil {
		return nil, ErrRoomClassNotFound
	}

	services, err := u.serviceRepo.FindByIDs(tx, selection.ServiceIDs)
	if err != nil {
		u.log.Warnf("Failed to find services %v: %+v", selection.ServiceIDs, err)
		return nil, err
	}
	if len(services) != len(selection.ServiceIDs) {
		return nil, ErrServiceNotFound
	}

	nights := int(selection.CheckOut.Sub(selection.CheckIn).Hours() / 24)
	quote, err := u.pricing.Calculate(class, nights, services)
	if err != nil {
		return nil, err
	}

	// Serialize allocation per class: lock the sellable rooms, then
	// compare the class inventory against the overlapping bookings.
	lockedRooms, err := u.roomRepo.FindAvailableByClassForUpdate(tx, class.ID)
	if err != nil {
		u.log.Warnf("Failed to lock rooms of class %d: %+v", class.ID, err)
		return nil, err
	}
	if len(lockedRooms) == 0 {
		return nil, ErrNoRoomsAvailable
	}

	totalRooms, err := u.roomRepo.CountByClass(tx, class.ID)
	if err != nil {
		u.log.Warnf("Failed to count rooms of class %d: %+v", class.ID, err)
		return nil, err
	}

	overlapping, err := u.bookingRepo.CountOverlapping(tx, class.ID, selection.CheckIn, selection.CheckOut)
	if err != nil {
		u.log.Warnf("Failed to count overlapping bookings for class %d: %+v", class.ID, err)
		return nil, err
	}
	if overlapping >= totalRooms {
		return nil, ErrNoRoomsAvailable
	}

	code, err := generateBookingCode(now)
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		ID:               uuid.New(),
		BookingCode:      code,
		CustomerID:       customerID,
		RoomClassID:      class.ID,
		GuestFullName:    request.FullName,
		GuestEmail:       request.Email,
		GuestPhoneNumber: request.PhoneNumber,
		GuestNationality: request.Nationality,
		CheckInDate:      selection.CheckIn,
		CheckOutDate:     selection.CheckOut,
		Adults:           selection.Adults,
		Children:         selection.Children,
		RoomPrice:        quote.RoomPrice,
		ServicesPrice:    quote.ServicesPrice,
		TotalPrice:       quote.TotalPrice,
		PaymentMethod:    entity.PaymentMethod(request.PaymentMethod),
		SpecialRequests:  request.SpecialRequests,
		Status:           entity.BookingStatusPendingReview,
	}

	// Bookings checking in within the urgent threshold skip the review
	// queue: they must be paid right away and are locked immediately.
	if entity.IsUrgentCheckIn(selection.CheckIn, now, u.bookingCfg.UrgentThreshold) {
		booking.Status = entity.BookingStatusPendingPayment
		booking.IsLocked = true
	}
	booking.AdditionalServices = services

	if err := u.bookingRepo.Create(tx, booking); err != nil {
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	if err := u.audit.Log(tx, customerID, entity.AuditActionBookingCreate, entity.JSON{
		"booking_code": booking.BookingCode,
		"room_class":   class.Name,
		"check_in":     selection.CheckIn.Format("2006-01-02"),
		"check_out":    selection.CheckOut.Format("2006-01-02"),
		"total_price":  booking.TotalPrice.StringFixed(2),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit checkout: %+v", err)
		return nil, err
	}

	// Draft cleanup is best-effort; the TTL reaps leftovers anyway
	_ = u.drafts.Delete(ctx, request.DraftToken)

	u.log.Infof("Booking created: code=%s status=%s", booking.BookingCode, booking.Status)

	created, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), booking.ID)
	if err != nil || created == nil {
		return converter.BookingToResponse(booking), nil
	}
	return converter.BookingToResponse(created), nil
}

func (u *guestBookingUsecase) GetMyBookings(ctx context.Context, customerID uuid.UUID) (*dto.BookingListResponse, error) {
	db := u.db.WithContext(ctx)
	bookings, err := u.bookingRepo.FindByCustomerID(db, customerID)
	if err != nil {
		u.log.Warnf("Failed to list bookings for customer %s: %+v", customerID, err)
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

// LookupByCode is the guest tracking endpoint. Deadlines are applied
// lazily before the booking is returned, so a guest polling the page
// always sees the reconciled state.
func (u *guestBookingUsecase) LookupByCode(ctx context.Context, code string) (*dto.BookingResponse, error) {
	booking, err := u.findByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return converter.BookingToResponse(booking), nil
}

// Edit updates contact details and the service selection while the
// booking is still an unlocked PENDING_REVIEW. Dates and the room class
// are fixed at checkout.
func (u *guestBookingUsecase) Edit(ctx context.Context, code string, request *dto.EditBookingRequest) (*dto.BookingResponse, error) {
	booking, err := u.findByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !booking.IsEditable() {
		return nil, ErrBookingNotEditable
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	locked, err := u.bookingRepo.FindByIDForUpdate(tx, booking.ID)
	if err != nil {
		u.log.Warnf("Failed to lock booking %s: %+v", code, err)
		return nil, err
	}
	if locked == nil {
		return nil, ErrBookingNotFound
	}
	if !locked.IsEditable() {
		return nil, ErrBookingNotEditable
	}

	services, err := u.serviceRepo.FindByIDs(tx, request.ServiceIDs)
	if err != nil {
		u.log.Warnf("Failed to find services %v: %+v", request.ServiceIDs, err)
		return nil, err
	}
	if len(services) != len(request.ServiceIDs) {
		return nil, ErrServiceNotFound
	}

	class, err := u.roomClassRepo.FindByID(tx, locked.RoomClassID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, ErrRoomClassNotFound
	}

	quote, err := u.pricing.Calculate(class, locked.Nights(), services)
	if err != nil {
		return nil, err
	}

	locked.GuestFullName = request.FullName
	locked.GuestEmail = request.Email
	locked.GuestPhoneNumber = request.PhoneNumber
	locked.GuestNationality = request.Nationality
	locked.SpecialRequests = request.SpecialRequests
	locked.RoomPrice = quote.RoomPrice
	locked.ServicesPrice = quote.ServicesPrice
	locked.TotalPrice = quote.TotalPrice

	if err := u.bookingRepo.Save(tx, locked); err != nil {
		u.log.Warnf("Failed to update booking %s: %+v", code, err)
		return nil, err
	}

	if err := u.bookingRepo.ReplaceServices(tx, locked, services); err != nil {
		u.log.Warnf("Failed to replace services of booking %s: %+v", code, err)
		return nil, err
	}

	if err := u.audit.Log(tx, locked.CustomerID, entity.AuditActionBookingEdit, entity.JSON{
		"booking_code": locked.BookingCode,
		"total_price":  locked.TotalPrice.StringFixed(2),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit booking edit: %+v", err)
		return nil, err
	}

	updated, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), locked.ID)
	if err != nil || updated == nil {
		return converter.BookingToResponse(locked), nil
	}
	return converter.BookingToResponse(updated), nil
}

// Cancel is the guest self-service cancellation. The conditional update
// keeps it from racing a concurrent lock or staff action.
func (u *guestBookingUsecase) Cancel(ctx context.Context, code string) error {
	booking, err := u.findByCode(ctx, code)
	if err != nil {
		return err
	}
	if !booking.IsCancellable() {
		return ErrBookingNotCancellable
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.bookingRepo.CancelByGuest(tx, booking.ID)
	if err != nil {
		u.log.Warnf("Failed to cancel booking %s: %+v", code, err)
		return err
	}
	if affected == 0 {
		return ErrBookingNotCancellable
	}

	if err := u.audit.Log(tx, booking.CustomerID, entity.AuditActionBookingCancel, entity.JSON{
		"booking_code": booking.BookingCode,
		"by":           "guest",
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit booking cancel: %+v", err)
		return err
	}

	u.log.Infof("Booking cancelled by guest: code=%s", code)
	return nil
}

// UploadPaymentProof records the transfer receipt. Re-uploading replaces
// the stored image; either way the booking moves to verification.
func (u *guestBookingUsecase) UploadPaymentProof(ctx context.Context, code string, imagePath string) (*dto.BookingResponse, error) {
	booking, err := u.findByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !booking.IsPaymentReady() && booking.Status != entity.BookingStatusPaymentPendingVerification {
		return nil, ErrProofNotAccepted
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	locked, err := u.bookingRepo.FindByIDForUpdate(tx, booking.ID)
	if err != nil {
		u.log.Warnf("Failed to lock booking %s: %+v", code, err)
		return nil, err
	}
	if locked == nil {
		return nil, ErrBookingNotFound
	}
	if !locked.IsPaymentReady() && locked.Status != entity.BookingStatusPaymentPendingVerification {
		return nil, ErrProofNotAccepted
	}

	proof := &entity.PaymentProof{
		BookingID: locked.ID,
		ImagePath: imagePath,
	}
	if err := u.proofRepo.Upsert(tx, proof); err != nil {
		u.log.Warnf("Failed to store payment proof for booking %s: %+v", code, err)
		return nil, err
	}

	// A re-upload while already in verification replaces the image only;
	// the status and payment_date stay put and no notification fires.
	transitioned := locked.Status != entity.BookingStatusPaymentPendingVerification
	if transitioned {
		affected, err := u.bookingRepo.UpdateStatus(tx, locked.ID,
			locked.Status, entity.BookingStatusPaymentPendingVerification,
			map[string]interface{}{"payment_date": time.Now().UTC()})
		if err != nil {
			u.log.Warnf("Failed to move booking %s to verification: %+v", code, err)
			return nil, err
		}
		if affected == 0 {
			return nil, ErrProofNotAccepted
		}
	}

	if err := u.audit.Log(tx, locked.CustomerID, entity.AuditActionBookingProofUpload, entity.JSON{
		"booking_code": locked.BookingCode,
		"image_path":   imagePath,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit proof upload: %+v", err)
		return nil, err
	}

	u.log.Infof("Payment proof uploaded: code=%s", code)

	updated, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), locked.ID)
	if err != nil || updated == nil {
		return converter.BookingToResponse(locked), nil
	}
	if transitioned {
		u.notifications.NotifyStatusChange(updated, entity.BookingStatusPaymentPendingVerification)
	}
	return converter.BookingToResponse(updated), nil
}

// findByCode loads a booking and applies the lazy deadline reconcile
func (u *guestBookingUsecase) findByCode(ctx context.Context, code string) (*entity.Booking, error) {
	booking, err := u.bookingRepo.FindByCode(u.db.WithContext(ctx), code)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", code, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if err := u.lifecycle.Reconcile(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func parseStayDates(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := time.ParseInLocation("2006-01-02", checkInStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	checkOut, err := time.ParseInLocation("2006-01-02", checkOutStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if checkIn.Before(entity.StartOfDay(time.Now().UTC())) {
		return time.Time{}, time.Time{}, ErrCheckInInPast
	}
	return checkIn, checkOut, nil
}

// generateBookingCode builds a human-readable reference like
// HB-20260115-7KQ2MD. Collisions are caught by the unique index.
func generateBookingCode(now time.Time) (string, error) {
	suffix := make([]byte, 6)
	max := big.NewInt(int64(len(bookingCodeAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate booking code: %w", err)
		}
		suffix[i] = bookingCodeAlphabet[n.Int64()]
	}
	return fmt.Sprintf("HB-%s-%s", now.Format("20060102"), string(suffix)), nil
}
