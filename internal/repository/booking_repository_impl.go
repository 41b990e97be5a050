package repository

import (
	"errors"
	"time"

	"hotel-booking-backend/internal/domain/entity"
	domainRepo "hotel-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) Save(db *gorm.DB, booking *entity.Booking) error {
	return db.Omit("Customer", "RoomClass", "AssignedRoom", "AdditionalServices", "PaymentProof").Save(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("RoomClass.RoomType").
		Preload("AssignedRoom").
		Preload("AdditionalServices").
		Preload("PaymentProof").
		Preload("Customer").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// FindByIDForUpdate row-locks the booking so staff actions re-check the
// source state without racing a concurrent mutation.
func (r *bookingRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByCode(db *gorm.DB, code string) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("RoomClass.RoomType").
		Preload("AssignedRoom").
		Preload("AdditionalServices").
		Preload("PaymentProof").
		Preload("Customer").
		Where("booking_code = ?", code).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("RoomClass.RoomType").
		Preload("AssignedRoom").
		Preload("AdditionalServices").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindAll(db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, error) {
	var bookings []entity.Booking
	query := db.Model(&entity.Booking{})

	if filter != nil {
		if filter.Status != "" {
			query = query.Where("bookings.status = ?", filter.Status)
		}
		if filter.GuestName != "" {
			query = query.
				Joins("LEFT JOIN users ON users.id = bookings.customer_id").
				Where("bookings.guest_full_name ILIKE ? OR users.full_name ILIKE ?",
					"%"+filter.GuestName+"%", "%"+filter.GuestName+"%")
		}
		if filter.CheckInFrom != "" {
			query = query.Where("bookings.check_in_date >= ?", filter.CheckInFrom)
		}
		if filter.CheckInTo != "" {
			query = query.Where("bookings.check_in_date <= ?", filter.CheckInTo)
		}
	}

	err := query.
		Preload("RoomClass.RoomType").
		Preload("AssignedRoom").
		Preload("Customer").
		Order("bookings.created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus performs the transition as a single conditional UPDATE.
// RowsAffected = 0 means the booking left fromStatus in the meantime, so
// the caller reports an illegal transition instead of mutating twice.
func (r *bookingRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, fromStatus, toStatus entity.BookingStatus, extra map[string]interface{}) (int64, error) {
	updates := map[string]interface{}{"status": toStatus}
	for k, v := range extra {
		updates[k] = v
	}
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) CancelByGuest(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status = ? AND is_locked = ?", id, entity.BookingStatusPendingReview, false).
		Update("status", entity.BookingStatusCancelled)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) MarkLocked(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status = ? AND is_locked = ?", id, entity.BookingStatusPendingReview, false).
		Update("is_locked", true)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) CountOverlapping(db *gorm.DB, roomClassID uint, checkIn, checkOut time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Booking{}).
		Where("room_class_id = ?", roomClassID).
		Where("status NOT IN ?", []entity.BookingStatus{entity.BookingStatusCancelled, entity.BookingStatusExpired}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) FindDueForReconcile(db *gorm.DB, createdBefore time.Time, checkInOnOrBefore time.Time) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.
		Where(
			db.Where("status = ? AND is_locked = ? AND (created_at <= ? OR check_in_date <= ?)",
				entity.BookingStatusPendingReview, false, createdBefore, checkInOnOrBefore).
				Or("status = ? AND payment_date IS NULL AND created_at < ?",
					entity.BookingStatusPendingPayment, createdBefore),
		).
		Preload("Customer").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ReplaceServices(db *gorm.DB, booking *entity.Booking, services []entity.Service) error {
	return db.Model(booking).Association("AdditionalServices").Replace(services)
}
