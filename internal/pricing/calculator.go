package pricing

import (
	"fmt"
	"math"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
)

// Config holds the block booking business parameters.
// It is supplied by the caller and never read from global state.
type Config struct {
	MinimumRooms       int     // room count from which the discount applies
	DiscountPercentage float64 // 0-100
}

// DefaultConfig returns the service-wide defaults
func DefaultConfig() Config {
	return Config{
		MinimumRooms:       domain.DefaultBlockMinimumRooms,
		DiscountPercentage: domain.DefaultBlockDiscountPercentage,
	}
}

// Validate checks the configuration ranges
func (c Config) Validate() error {
	if c.MinimumRooms < 0 {
		return fmt.Errorf("%w: minimum rooms must not be negative, got %d", ErrInvalidConfig, c.MinimumRooms)
	}
	if math.IsNaN(c.DiscountPercentage) || c.DiscountPercentage < 0 || c.DiscountPercentage > 100 {
		return fmt.Errorf("%w: discount percentage must be within 0..100, got %v", ErrInvalidConfig, c.DiscountPercentage)
	}
	return nil
}

// ForHotel applies the hotel's block pricing overrides on top of c
func (c Config) ForHotel(hotel *domain.Hotel) Config {
	if hotel == nil {
		return c
	}
	resolved := c
	if hotel.BlockMinimumRooms != nil {
		resolved.MinimumRooms = *hotel.BlockMinimumRooms
	}
	if hotel.BlockDiscountPercentage != nil {
		resolved.DiscountPercentage = *hotel.BlockDiscountPercentage
	}
	return resolved
}

// Quote is the priced result of a block booking
type Quote struct {
	RoomCount          int
	MinimumRooms       int
	Subtotal           float64
	IsEligible         bool
	DiscountPercentage float64 // applied percentage, 0 when not eligible
	DiscountAmount     float64
	FinalAmount        float64
	Savings            float64 // always equals DiscountAmount
}

// Calculator computes block booking discounts. It is stateless apart from its
// immutable Config and safe for concurrent use.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a calculator with a validated configuration
func NewCalculator(cfg Config) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{cfg: cfg}, nil
}

// Config returns the calculator configuration
func (c *Calculator) Config() Config {
	return c.cfg
}

// CalculateDiscount prices a block booking of roomCount rooms.
//
//  1. eligible = roomCount >= MinimumRooms
//  2. discount = round2(subtotal * DiscountPercentage / 100) when eligible, else 0
//  3. final = subtotal - discount
//
// Amounts are handled in whole cents with half-up rounding.
func (c *Calculator) CalculateDiscount(roomCount int, subtotal float64) (Quote, error) {
	if roomCount < 0 {
		return Quote{}, fmt.Errorf("%w: room count must not be negative, got %d", ErrInvalidArgument, roomCount)
	}
	if err := validateAmount("subtotal", subtotal); err != nil {
		return Quote{}, err
	}

	subtotalCents := toCents(subtotal)
	eligible := roomCount >= c.cfg.MinimumRooms

	var (
		discountCents int64
		percentage    float64
	)
	if eligible {
		percentage = c.cfg.DiscountPercentage
		discountCents = roundHalfUp(float64(subtotalCents)*percentage/100, 0)
	}

	discount := fromCents(discountCents)

	return Quote{
		RoomCount:          roomCount,
		MinimumRooms:       c.cfg.MinimumRooms,
		Subtotal:           fromCents(subtotalCents),
		IsEligible:         eligible,
		DiscountPercentage: percentage,
		DiscountAmount:     discount,
		FinalAmount:        fromCents(subtotalCents - discountCents),
		Savings:            discount,
	}, nil
}
