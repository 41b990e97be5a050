package service

import (
	"errors"

	"hotel-booking-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ErrInvalidStayDuration is returned when check-out is not after check-in
var ErrInvalidStayDuration = errors.New("stay must be at least one night")

// Quote is the computed price breakdown for a booking. TotalPrice is
// always RoomPrice + ServicesPrice.
type Quote struct {
	RoomPrice     decimal.Decimal
	ServicesPrice decimal.Decimal
	TotalPrice    decimal.Decimal
}

// PricingService computes booking prices with fixed-point decimal
// arithmetic. Unit prices are rounded to two decimals before
// multiplication and summing; the final sums are not re-rounded.
type PricingService struct{}

func NewPricingService() *PricingService {
	return &PricingService{}
}

// Calculate computes room price (base rate x nights) plus the sum of the
// selected service prices. A non-positive night count is a validation
// error, never a zero-price quote.
func (s *PricingService) Calculate(class *entity.RoomClass, nights int, services []entity.Service) (*Quote, error) {
	if nights <= 0 {
		return nil, ErrInvalidStayDuration
	}

	roomPrice := class.BasePrice.Round(2).Mul(decimal.NewFromInt(int64(nights)))

	servicesPrice := decimal.Zero
	for _, svc := range services {
		servicesPrice = servicesPrice.Add(svc.Price.Round(2))
	}

	return &Quote{
		RoomPrice:     roomPrice,
		ServicesPrice: servicesPrice,
		TotalPrice:    roomPrice.Add(servicesPrice),
	}, nil
}
