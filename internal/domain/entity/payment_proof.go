package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentProof holds the guest-uploaded bank transfer evidence for a
// booking. One proof per booking; re-uploads replace the image in place.
type PaymentProof struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"booking_id"`
	ImagePath  string    `gorm:"type:varchar(500);not null" json:"image_path"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PaymentProof) TableName() string {
	return "payment_proofs"
}
