package repository

import (
	"time"

	"hotel-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	Save(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByCode(db *gorm.DB, code string) (*entity.Booking, error)
	FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error)
	FindAll(db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, error)

	// UpdateStatus transitions id from fromStatus to toStatus and applies
	// extra column writes atomically. Returns affected rows: 0 means the
	// booking was no longer in fromStatus (illegal or duplicate action).
	UpdateStatus(db *gorm.DB, id uuid.UUID, fromStatus, toStatus entity.BookingStatus, extra map[string]interface{}) (int64, error)

	// CancelByGuest cancels a booking only while it is still an
	// unlocked PENDING_REVIEW. Returns affected rows.
	CancelByGuest(db *gorm.DB, id uuid.UUID) (int64, error)

	// MarkLocked sets is_locked on a still-unlocked PENDING_REVIEW
	// booking. Returns affected rows; 0 means another caller got there
	// first or the booking moved on.
	MarkLocked(db *gorm.DB, id uuid.UUID) (int64, error)

	// CountOverlapping counts active (non-cancelled, non-expired)
	// bookings of the room class whose [check_in, check_out) range
	// overlaps the given half-open range.
	CountOverlapping(db *gorm.DB, roomClassID uint, checkIn, checkOut time.Time) (int64, error)

	// FindDueForReconcile returns non-terminal bookings whose lock or
	// expiry deadline has passed, for the periodic sweep.
	FindDueForReconcile(db *gorm.DB, createdBefore time.Time, checkInOnOrBefore time.Time) ([]entity.Booking, error)

	ReplaceServices(db *gorm.DB, booking *entity.Booking, services []entity.Service) error
}
