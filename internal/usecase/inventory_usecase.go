package usecase

import (
	"context"
	"errors"

	"hotel-booking-backend/internal/converter"
	"hotel-booking-backend/internal/delivery/dto"
	"hotel-booking-backend/internal/domain/entity"
	"hotel-booking-backend/internal/domain/repository"
	"hotel-booking-backend/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRoomTypeNotFound  = errors.New("room type not found")
	ErrInvalidPrice      = errors.New("price must be a valid decimal number")
	ErrRoomNumberTaken   = errors.New("room number already exists")
	ErrRoomOccupied      = errors.New("occupied rooms change status through check-out")
	ErrCatalogInUse      = errors.New("record is referenced by existing data and cannot be deleted")
	ErrServiceNotFoundID = errors.New("service not found")
)

// InventoryUsecase is the back-office management of the physical
// catalog: room types, priced classes, numbered rooms, and the add-on
// services. Admin-only except for SetRoomStatus, which reception uses
// for housekeeping.
type InventoryUsecase interface {
	CreateRoomType(ctx context.Context, staffID uuid.UUID, req *dto.RoomTypeRequest) (*dto.RoomTypeResponse, error)
	UpdateRoomType(ctx context.Context, staffID uuid.UUID, id uint, req *dto.RoomTypeRequest) (*dto.RoomTypeResponse, error)
	DeleteRoomType(ctx context.Context, staffID uuid.UUID, id uint) error

	CreateRoomClass(ctx context.Context, staffID uuid.UUID, req *dto.RoomClassRequest) (*dto.RoomClassResponse, error)
	UpdateRoomClass(ctx context.Context, staffID uuid.UUID, id uint, req *dto.RoomClassRequest) (*dto.RoomClassResponse, error)
	DeleteRoomClass(ctx context.Context, staffID uuid.UUID, id uint) error

	ListRooms(ctx context.Context) ([]dto.RoomResponse, error)
	CreateRoom(ctx context.Context, staffID uuid.UUID, req *dto.RoomRequest) (*dto.RoomResponse, error)
	DeleteRoom(ctx context.Context, staffID uuid.UUID, id uint) error
	SetRoomStatus(ctx context.Context, staffID uuid.UUID, id uint, req *dto.RoomStatusRequest) (*dto.RoomResponse, error)

	CreateService(ctx context.Context, staffID uuid.UUID, req *dto.ServiceRequest) (*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, staffID uuid.UUID, id uint, req *dto.ServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, staffID uuid.UUID, id uint) error
}

type inventoryUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	roomTypeRepo  repository.RoomTypeRepository
	roomClassRepo repository.RoomClassRepository
	roomRepo      repository.RoomRepository
	serviceRepo   repository.ServiceRepository
	audit         service.AuditService
}

func NewInventoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomTypeRepo repository.RoomTypeRepository,
	roomClassRepo repository.RoomClassRepository,
	roomRepo repository.RoomRepository,
	serviceRepo repository.ServiceRepository,
	audit service.AuditService,
) InventoryUsecase {
	return &inventoryUsecase{
		db:            db,
		log:           log,
		roomTypeRepo:  roomTypeRepo,
		roomClassRepo: roomClassRepo,
		roomRepo:      roomRepo,
		serviceRepo:   serviceRepo,
		audit:         audit,
	}
}

func (u *inventoryUsecase) CreateRoomType(ctx context.Context, staffID uuid.UUID, req *dto.RoomTypeRequest) (*dto.RoomTypeResponse, error) {
	roomType := &entity.RoomType{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := u.roomTypeRepo.Create(u.db.WithContext(ctx), roomType); err != nil {
		u.log.Warnf("Failed to create room type: %+v", err)
		return nil, err
	}
	return converter.RoomTypeToResponse(roomType), nil
}

func (u *inventoryUsecase) UpdateRoomType(ctx context.Context, staffID uuid.UUID, id uint, req *dto.RoomTypeRequest) (*dto.RoomTypeResponse, error) {
	db := u.db.WithContext(ctx)
	roomType, err := u.roomTypeRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find room type %d: %+v", id, err)
		return nil, err
	}
	if roomType == nil {
		return nil, ErrRoomTypeNotFound
	}

	roomType.Name = req.Name
	roomType.Description = req.Description
	if err := u.roomTypeRepo.Update(db, roomType); err != nil {
		u.log.Warnf("Failed to update room type %d: %+v", id, err)
		return nil, err
	}
	return converter.RoomTypeToResponse(roomType), nil
}

func (u *inventoryUsecase) DeleteRoomType(ctx context.Context, staffID uuid.UUID, id uint) error {
	affected, err := u.roomTypeRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err) {
			return ErrCatalogInUse
		}
		u.log.Warnf("Failed to delete room type %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrRoomTypeNotFound
	}
	return nil
}

func (u *inventoryUsecase) CreateRoomClass(ctx context.Context, staffID uuid.UUID, req *dto.RoomClassRequest) (*dto.RoomClassResponse, error) {
	basePrice, err := decimal.NewFromString(req.BasePrice)
	if err != nil || basePrice.IsNegative() {
		return nil, ErrInvalidPrice
	}

	db := u.db.WithContext(ctx)
	roomType, err := u.roomTypeRepo.FindByID(db, req.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, ErrRoomTypeNotFound
	}

	class := &entity.RoomClass{
		RoomTypeID:  req.RoomTypeID,
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   basePrice,
		Area:        req.Area,
		Capacity:    req.Capacity,
		Amenities:   req.Amenities,
	}

	if err := u.roomClassRepo.Create(db, class); err != nil {
		u.log.Warnf("Failed to create room class: %+v", err)
		return nil, err
	}
	class.RoomType = *roomType
	return converter.RoomClassToResponse(class, nil), nil
}

func (u *inventoryUsecase) UpdateRoomClass(ctx context.Context, staffID uuid.UUID, id uint, req *dto.RoomClassRequest) (*dto.RoomClassResponse, error) {
	basePrice, err := decimal.NewFromString(req.BasePrice)
	if err != nil || basePrice.IsNegative() {
		return nil, ErrInvalidPrice
	}

	db := u.db.WithContext(ctx)
	class, err := u.roomClassRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find room class %d: %+v", id, err)
		return nil, err
	}
	if class == nil {
		return nil, ErrRoomClassNotFound
	}

	class.RoomTypeID = req.RoomTypeID
	class.Name = req.Name
	class.Description = req.Description
	class.BasePrice = basePrice
	class.Area = req.Area
	class.Capacity = req.Capacity
	class.Amenities = req.Amenities

	if err := u.roomClassRepo.Update(db, class); err != nil {
		u.log.Warnf("Failed to update room class %d: %+v", id, err)
		return nil, err
	}
	return converter.RoomClassToResponse(class, nil), nil
}

func (u *inventoryUsecase) DeleteRoomClass(ctx context.Context, staffID uuid.UUID, id uint) error {
	affected, err := u.roomClassRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err) {
			return ErrCatalogInUse
		}
		u.log.Warnf("Failed to delete room class %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrRoomClassNotFound
	}
	return nil
}

func (u *inventoryUsecase) ListRooms(ctx context.Context) ([]dto.RoomResponse, error) {
	rooms, err := u.roomRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list rooms: %+v", err)
		return nil, err
	}
	return converter.RoomsToResponses(rooms), nil
}

func (u *inventoryUsecase) CreateRoom(ctx context.Context, staffID uuid.UUID, req *dto.RoomRequest) (*dto.RoomResponse, error) {
	db := u.db.WithContext(ctx)
	class, err := u.roomClassRepo.FindByID(db, req.RoomClassID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, ErrRoomClassNotFound
	}

	room := &entity.Room{
		RoomClassID: req.RoomClassID,
		RoomNumber:  req.RoomNumber,
		Status:      entity.RoomStatusAvailable,
	}

	if err := u.roomRepo.Create(db, room); err != nil {
		if isDuplicateKeyError(err, "room_number") {
			return nil, ErrRoomNumberTaken
		}
		u.log.Warnf("Failed to create room: %+v", err)
		return nil, err
	}
	return converter.RoomToResponse(room), nil
}

func (u *inventoryUsecase) DeleteRoom(ctx context.Context, staffID uuid.UUID, id uint) error {
	affected, err := u.roomRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err) {
			return ErrCatalogInUse
		}
		u.log.Warnf("Failed to delete room %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// SetRoomStatus is the housekeeping toggle. OCCUPIED is unreachable
// from here: only check-in produces it and only check-out leaves it.
func (u *inventoryUsecase) SetRoomStatus(ctx context.Context, staffID uuid.UUID, id uint, req *dto.RoomStatusRequest) (*dto.RoomResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.roomRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to lock room %d: %+v", id, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.Status == entity.RoomStatusOccupied {
		return nil, ErrRoomOccupied
	}

	newStatus := entity.RoomStatus(req.Status)
	if _, err := u.roomRepo.UpdateStatus(tx, room.ID, room.Status, newStatus); err != nil {
		u.log.Warnf("Failed to update room %d status: %+v", id, err)
		return nil, err
	}

	if err := u.audit.Log(tx, &staffID, entity.AuditActionRoomStatusChange, entity.JSON{
		"room_number": room.RoomNumber,
		"from":        string(room.Status),
		"to":          string(newStatus),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit room status change: %+v", err)
		return nil, err
	}

	room.Status = newStatus
	return converter.RoomToResponse(room), nil
}

func (u *inventoryUsecase) CreateService(ctx context.Context, staffID uuid.UUID, req *dto.ServiceRequest) (*dto.ServiceResponse, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	svc := &entity.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
	}

	if err := u.serviceRepo.Create(u.db.WithContext(ctx), svc); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}
	return converter.ServiceToResponse(svc), nil
}

func (u *inventoryUsecase) UpdateService(ctx context.Context, staffID uuid.UUID, id uint, req *dto.ServiceRequest) (*dto.ServiceResponse, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	db := u.db.WithContext(ctx)
	svc, err := u.serviceRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", id, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFoundID
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Price = price

	if err := u.serviceRepo.Update(db, svc); err != nil {
		u.log.Warnf("Failed to update service %d: %+v", id, err)
		return nil, err
	}
	return converter.ServiceToResponse(svc), nil
}

func (u *inventoryUsecase) DeleteService(ctx context.Context, staffID uuid.UUID, id uint) error {
	affected, err := u.serviceRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err) {
			return ErrCatalogInUse
		}
		u.log.Warnf("Failed to delete service %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrServiceNotFoundID
	}
	return nil
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
func isForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	// PostgreSQL error code 23503 = foreign_key_violation
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
