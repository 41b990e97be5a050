package repository

import (
	"hotel-booking-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	Update(db *gorm.DB, service *entity.Service) error
	Delete(db *gorm.DB, id uint) (int64, error)
	FindByID(db *gorm.DB, id uint) (*entity.Service, error)
	FindByIDs(db *gorm.DB, ids []uint) ([]entity.Service, error)
	FindAll(db *gorm.DB) ([]entity.Service, error)
}
