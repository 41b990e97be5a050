package repository

import (
	"hotel-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentProofRepository interface {
	// Upsert creates the proof on first upload and replaces the image
	// path in place on subsequent uploads
	Upsert(db *gorm.DB, proof *entity.PaymentProof) error
	FindByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.PaymentProof, error)
}
