package repository

import (
	"hotel-booking-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type RoomClassRepository interface {
	Create(db *gorm.DB, class *entity.RoomClass) error
	Update(db *gorm.DB, class *entity.RoomClass) error
	Delete(db *gorm.DB, id uint) (int64, error)
	FindByID(db *gorm.DB, id uint) (*entity.RoomClass, error)
	FindByTypeID(db *gorm.DB, roomTypeID uint) ([]entity.RoomClass, error)
	FindAll(db *gorm.DB) ([]entity.RoomClass, error)
}

type RoomTypeRepository interface {
	Create(db *gorm.DB, roomType *entity.RoomType) error
	Update(db *gorm.DB, roomType *entity.RoomType) error
	Delete(db *gorm.DB, id uint) (int64, error)
	FindByID(db *gorm.DB, id uint) (*entity.RoomType, error)
	FindAll(db *gorm.DB) ([]entity.RoomType, error)
}
