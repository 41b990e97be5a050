package usecase

import (
	"context"
	"time"

	"hotel-booking-backend/internal/converter"
	"hotel-booking-backend/internal/delivery/dto"
	"hotel-booking-backend/internal/domain/repository"
	"hotel-booking-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CatalogUsecase serves the public browsing pages: room types, the
// priced classes beneath them, and the add-on service list. No
// authentication involved.
type CatalogUsecase interface {
	ListRoomTypes(ctx context.Context) ([]dto.RoomTypeResponse, error)
	ListRoomClasses(ctx context.Context, checkInStr, checkOutStr string) ([]dto.RoomClassResponse, error)
	GetRoomClass(ctx context.Context, id uint) (*dto.RoomClassResponse, error)
	ListServices(ctx context.Context) ([]dto.ServiceResponse, error)
	Quote(ctx context.Context, request *dto.DraftSelectionRequest) (*dto.QuoteResponse, error)
}

type catalogUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	roomTypeRepo  repository.RoomTypeRepository
	roomClassRepo repository.RoomClassRepository
	roomRepo      repository.RoomRepository
	bookingRepo   repository.BookingRepository
	serviceRepo   repository.ServiceRepository
	pricing       *service.PricingService
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomTypeRepo repository.RoomTypeRepository,
	roomClassRepo repository.RoomClassRepository,
	roomRepo repository.RoomRepository,
	bookingRepo repository.BookingRepository,
	serviceRepo repository.ServiceRepository,
	pricing *service.PricingService,
) CatalogUsecase {
	return &catalogUsecase{
		db:            db,
		log:           log,
		roomTypeRepo:  roomTypeRepo,
		roomClassRepo: roomClassRepo,
		roomRepo:      roomRepo,
		bookingRepo:   bookingRepo,
		serviceRepo:   serviceRepo,
		pricing:       pricing,
	}
}

func (u *catalogUsecase) ListRoomTypes(ctx context.Context) ([]dto.RoomTypeResponse, error) {
	roomTypes, err := u.roomTypeRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list room types: %+v", err)
		return nil, err
	}
	return converter.RoomTypesToResponses(roomTypes), nil
}

// ListRoomClasses lists the bookable tiers. With a date range the
// availability count is inventory minus overlapping bookings; without
// one it is the count of rooms currently in AVAILABLE status.
func (u *catalogUsecase) ListRoomClasses(ctx context.Context, checkInStr, checkOutStr string) ([]dto.RoomClassResponse, error) {
	var checkIn, checkOut time.Time
	withDates := checkInStr != "" && checkOutStr != ""
	if withDates {
		var err error
		checkIn, checkOut, err = parseStayDates(checkInStr, checkOutStr)
		if err != nil {
			return nil, err
		}
	}

	db := u.db.WithContext(ctx)
	classes, err := u.roomClassRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to list room classes: %+v", err)
		return nil, err
	}

	responses := make([]dto.RoomClassResponse, 0, len(classes))
	for i := range classes {
		class := &classes[i]

		var available int64
		if withDates {
			total, err := u.roomRepo.CountByClass(db, class.ID)
			if err != nil {
				return nil, err
			}
			overlapping, err := u.bookingRepo.CountOverlapping(db, class.ID, checkIn, checkOut)
			if err != nil {
				return nil, err
			}
			available = total - overlapping
			if available < 0 {
				available = 0
			}
		} else {
			available, err = u.roomRepo.CountAvailableByClass(db, class.ID)
			if err != nil {
				return nil, err
			}
		}

		responses = append(responses, *converter.RoomClassToResponse(class, &available))
	}

	return responses, nil
}

func (u *catalogUsecase) GetRoomClass(ctx context.Context, id uint) (*dto.RoomClassResponse, error) {
	db := u.db.WithContext(ctx)
	class, err := u.roomClassRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find room class %d: %+v", id, err)
		return nil, err
	}
	if class == nil {
		return nil, ErrRoomClassNotFound
	}

	available, err := u.roomRepo.CountAvailableByClass(db, class.ID)
	if err != nil {
		return nil, err
	}
	return converter.RoomClassToResponse(class, &available), nil
}

func (u *catalogUsecase) ListServices(ctx context.Context) ([]dto.ServiceResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}
	return converter.ServicesToResponses(services), nil
}

// Quote prices a selection without persisting anything, for the price
// summary step of the funnel
func (u *catalogUsecase) Quote(ctx context.Context, request *dto.DraftSelectionRequest) (*dto.QuoteResponse, error) {
	checkIn, checkOut, err := parseStayDates(request.CheckInDate, request.CheckOutDate)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)
	class, err := u.roomClassRepo.FindByID(db, request.RoomClassID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, ErrRoomClassNotFound
	}

	services, err := u.serviceRepo.FindByIDs(db, request.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(request.ServiceIDs) {
		return nil, ErrServiceNotFound
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	quote, err := u.pricing.Calculate(class, nights, services)
	if err != nil {
		return nil, err
	}

	return &dto.QuoteResponse{
		Nights:        nights,
		RoomPrice:     quote.RoomPrice.StringFixed(2),
		ServicesPrice: quote.ServicesPrice.StringFixed(2),
		TotalPrice:    quote.TotalPrice.StringFixed(2),
	}, nil
}
