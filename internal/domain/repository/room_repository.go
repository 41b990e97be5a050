package repository

import (
	"hotel-booking-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type RoomRepository interface {
	Create(db *gorm.DB, room *entity.Room) error
	Update(db *gorm.DB, room *entity.Room) error
	Delete(db *gorm.DB, id uint) (int64, error)
	FindByID(db *gorm.DB, id uint) (*entity.Room, error)
	FindByClassID(db *gorm.DB, roomClassID uint) ([]entity.Room, error)
	FindAll(db *gorm.DB) ([]entity.Room, error)

	// FindAvailableByClassForUpdate row-locks and returns the AVAILABLE
	// rooms of a class. Must run inside a transaction; the lock is what
	// keeps two concurrent checkouts from both taking the last room.
	FindAvailableByClassForUpdate(db *gorm.DB, roomClassID uint) ([]entity.Room, error)

	// FindByIDForUpdate row-locks a single room for a check-then-assign
	FindByIDForUpdate(db *gorm.DB, id uint) (*entity.Room, error)

	CountByClass(db *gorm.DB, roomClassID uint) (int64, error)
	CountAvailableByClass(db *gorm.DB, roomClassID uint) (int64, error)
	UpdateStatus(db *gorm.DB, id uint, from, to entity.RoomStatus) (int64, error)
}
