package repository

import (
	"errors"

	"hotel-booking-backend/internal/domain/entity"
	domainRepo "hotel-booking-backend/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roomRepository struct{}

func NewRoomRepository() domainRepo.RoomRepository {
	return &roomRepository{}
}

func (r *roomRepository) Create(db *gorm.DB, room *entity.Room) error {
	return db.Create(room).Error
}

func (r *roomRepository) Update(db *gorm.DB, room *entity.Room) error {
	return db.Omit("RoomClass").Save(room).Error
}

func (r *roomRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Room{})
	return result.RowsAffected, result.Error
}

func (r *roomRepository) FindByID(db *gorm.DB, id uint) (*entity.Room, error) {
	var room entity.Room
	err := db.Preload("RoomClass.RoomType").Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByClassID(db *gorm.DB, roomClassID uint) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.Where("room_class_id = ?", roomClassID).Order("room_number ASC").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) FindAll(db *gorm.DB) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.Preload("RoomClass.RoomType").Order("room_number ASC").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// FindAvailableByClassForUpdate takes SELECT ... FOR UPDATE locks on the
// AVAILABLE rooms of the class. Two concurrent checkouts for the same
// class serialize here: the second transaction blocks until the first
// commits and then sees the updated availability.
func (r *roomRepository) FindAvailableByClassForUpdate(db *gorm.DB, roomClassID uint) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_class_id = ? AND status = ?", roomClassID, entity.RoomStatusAvailable).
		Order("room_number ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) FindByIDForUpdate(db *gorm.DB, id uint) (*entity.Room, error) {
	var room entity.Room
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) CountByClass(db *gorm.DB, roomClassID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.Room{}).Where("room_class_id = ?", roomClassID).Count(&count).Error
	return count, err
}

func (r *roomRepository) CountAvailableByClass(db *gorm.DB, roomClassID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.Room{}).
		Where("room_class_id = ? AND status = ?", roomClassID, entity.RoomStatusAvailable).
		Count(&count).Error
	return count, err
}

// UpdateStatus flips the room status only when it still holds the
// expected source status. RowsAffected = 0 signals a lost race.
func (r *roomRepository) UpdateStatus(db *gorm.DB, id uint, from, to entity.RoomStatus) (int64, error) {
	result := db.Model(&entity.Room{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}
