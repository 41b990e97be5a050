package repository

import (
	"errors"

	"hotel-booking-backend/internal/domain/entity"
	domainRepo "hotel-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type paymentProofRepository struct{}

func NewPaymentProofRepository() domainRepo.PaymentProofRepository {
	return &paymentProofRepository{}
}

// Upsert relies on the unique booking_id index: the first upload inserts,
// later uploads overwrite the stored image path.
func (r *paymentProofRepository) Upsert(db *gorm.DB, proof *entity.PaymentProof) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "booking_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"image_path", "updated_at"}),
	}).Create(proof).Error
}

func (r *paymentProofRepository) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.PaymentProof, error) {
	var proof entity.PaymentProof
	err := db.Where("booking_id = ?", bookingID).First(&proof).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &proof, nil
}
