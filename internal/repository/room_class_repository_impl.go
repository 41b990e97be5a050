package repository

import (
	"errors"

	"hotel-booking-backend/internal/domain/entity"
	domainRepo "hotel-booking-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type roomClassRepository struct{}

func NewRoomClassRepository() domainRepo.RoomClassRepository {
	return &roomClassRepository{}
}

func (r *roomClassRepository) Create(db *gorm.DB, class *entity.RoomClass) error {
	return db.Create(class).Error
}

func (r *roomClassRepository) Update(db *gorm.DB, class *entity.RoomClass) error {
	return db.Omit("RoomType", "Rooms").Save(class).Error
}

func (r *roomClassRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.RoomClass{})
	return result.RowsAffected, result.Error
}

func (r *roomClassRepository) FindByID(db *gorm.DB, id uint) (*entity.RoomClass, error) {
	var class entity.RoomClass
	err := db.Preload("RoomType").Where("id = ?", id).First(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &class, nil
}

func (r *roomClassRepository) FindByTypeID(db *gorm.DB, roomTypeID uint) ([]entity.RoomClass, error) {
	var classes []entity.RoomClass
	err := db.Where("room_type_id = ?", roomTypeID).Order("base_price ASC").Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *roomClassRepository) FindAll(db *gorm.DB) ([]entity.RoomClass, error) {
	var classes []entity.RoomClass
	err := db.Preload("RoomType").Order("base_price ASC").Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

type roomTypeRepository struct{}

func NewRoomTypeRepository() domainRepo.RoomTypeRepository {
	return &roomTypeRepository{}
}

func (r *roomTypeRepository) Create(db *gorm.DB, roomType *entity.RoomType) error {
	return db.Create(roomType).Error
}

func (r *roomTypeRepository) Update(db *gorm.DB, roomType *entity.RoomType) error {
	return db.Omit("Classes").Save(roomType).Error
}

func (r *roomTypeRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.RoomType{})
	return result.RowsAffected, result.Error
}

func (r *roomTypeRepository) FindByID(db *gorm.DB, id uint) (*entity.RoomType, error) {
	var roomType entity.RoomType
	err := db.Where("id = ?", id).First(&roomType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &roomType, nil
}

func (r *roomTypeRepository) FindAll(db *gorm.DB) ([]entity.RoomType, error) {
	var roomTypes []entity.RoomType
	err := db.Order("name ASC").Find(&roomTypes).Error
	if err != nil {
		return nil, err
	}
	return roomTypes, nil
}
