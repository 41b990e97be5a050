package service

import (
	"testing"

	"hotel-booking-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRoomAndServices(t *testing.T) {
	pricing := NewPricingService()
	class := &entity.RoomClass{BasePrice: decimal.RequireFromString("500000")}
	services := []entity.Service{
		{Price: decimal.RequireFromString("150000")},
		{Price: decimal.RequireFromString("50000")},
	}

	quote, err := pricing.Calculate(class, 3, services)
	require.NoError(t, err)

	assert.Equal(t, "1500000.00", quote.RoomPrice.StringFixed(2))
	assert.Equal(t, "200000.00", quote.ServicesPrice.StringFixed(2))
	assert.Equal(t, "1700000.00", quote.TotalPrice.StringFixed(2))
}

func TestCalculateWithoutServices(t *testing.T) {
	pricing := NewPricingService()
	class := &entity.RoomClass{BasePrice: decimal.RequireFromString("750000.50")}

	quote, err := pricing.Calculate(class, 2, nil)
	require.NoError(t, err)

	assert.Equal(t, "1500001.00", quote.RoomPrice.StringFixed(2))
	assert.True(t, quote.ServicesPrice.IsZero())
	assert.Equal(t, "1500001.00", quote.TotalPrice.StringFixed(2))
}

func TestCalculateRejectsNonPositiveNights(t *testing.T) {
	pricing := NewPricingService()
	class := &entity.RoomClass{BasePrice: decimal.RequireFromString("500000")}

	_, err := pricing.Calculate(class, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidStayDuration)

	_, err = pricing.Calculate(class, -2, nil)
	assert.ErrorIs(t, err, ErrInvalidStayDuration)
}

func TestCalculateRoundsUnitPricesBeforeMultiplying(t *testing.T) {
	pricing := NewPricingService()
	// 99.999 rounds to 100.00 per night before the multiply
	class := &entity.RoomClass{BasePrice: decimal.RequireFromString("99.999")}

	quote, err := pricing.Calculate(class, 3, []entity.Service{
		{Price: decimal.RequireFromString("10.005")},
	})
	require.NoError(t, err)

	assert.Equal(t, "300.00", quote.RoomPrice.StringFixed(2))
	assert.Equal(t, "10.01", quote.ServicesPrice.StringFixed(2))
	assert.Equal(t, "310.01", quote.TotalPrice.StringFixed(2))
}

func TestTotalIsAlwaysRoomPlusServices(t *testing.T) {
	pricing := NewPricingService()
	class := &entity.RoomClass{BasePrice: decimal.RequireFromString("123456.78")}
	services := []entity.Service{
		{Price: decimal.RequireFromString("0.01")},
		{Price: decimal.RequireFromString("999999.99")},
	}

	quote, err := pricing.Calculate(class, 7, services)
	require.NoError(t, err)
	assert.True(t, quote.TotalPrice.Equal(quote.RoomPrice.Add(quote.ServicesPrice)))
}
