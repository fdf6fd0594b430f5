package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/pkg/ptr"
)

func newCalculator(t *testing.T) *Calculator {
	t.Helper()
	calc, err := NewCalculator(Config{MinimumRooms: 5, DiscountPercentage: 15})
	require.NoError(t, err)
	return calc
}

func TestCalculateDiscount_ThresholdBoundary(t *testing.T) {
	calc := newCalculator(t)

	below, err := calc.CalculateDiscount(4, 1000)
	require.NoError(t, err)
	assert.False(t, below.IsEligible)
	assert.Equal(t, 0.0, below.DiscountAmount)
	assert.Equal(t, 0.0, below.DiscountPercentage)
	assert.Equal(t, 1000.0, below.FinalAmount)

	at, err := calc.CalculateDiscount(5, 1000)
	require.NoError(t, err)
	assert.True(t, at.IsEligible)
	assert.Equal(t, 150.0, at.DiscountAmount)
	assert.Equal(t, 850.0, at.FinalAmount)
	assert.Equal(t, 150.0, at.Savings)
	assert.Equal(t, 15.0, at.DiscountPercentage)
	assert.Equal(t, 5, at.MinimumRooms)
}

func TestCalculateDiscount_AgencyScenario(t *testing.T) {
	calc := newCalculator(t)

	subtotal, err := StaySubtotal([]float64{150, 150, 150, 150, 150, 150}, 3)
	require.NoError(t, err)
	require.Equal(t, 2700.0, subtotal)

	quote, err := calc.CalculateDiscount(6, subtotal)
	require.NoError(t, err)
	assert.True(t, quote.IsEligible)
	assert.Equal(t, 405.0, quote.DiscountAmount)
	assert.Equal(t, 2295.0, quote.FinalAmount)
}

func TestCalculateDiscount_RoundsHalfUp(t *testing.T) {
	calc, err := NewCalculator(Config{MinimumRooms: 1, DiscountPercentage: 15})
	require.NoError(t, err)

	// 0.15 * 33.30 = 4.995 -> 5.00
	quote, err := calc.CalculateDiscount(1, 33.30)
	require.NoError(t, err)
	assert.Equal(t, 5.0, quote.DiscountAmount)
	assert.Equal(t, 28.30, quote.FinalAmount)

	// 0.15 * 0.10 = 0.015 -> 0.02
	quote, err = calc.CalculateDiscount(1, 0.10)
	require.NoError(t, err)
	assert.Equal(t, 0.02, quote.DiscountAmount)
	assert.Equal(t, 0.08, quote.FinalAmount)
}

func TestCalculateDiscount_InvariantsHold(t *testing.T) {
	calc := newCalculator(t)

	for rooms := 0; rooms <= 8; rooms++ {
		for _, subtotal := range []float64{0, 0.01, 99.99, 1234.56, 2700, 99999.99} {
			quote, err := calc.CalculateDiscount(rooms, subtotal)
			require.NoError(t, err)

			assert.InDelta(t, quote.Subtotal-quote.DiscountAmount, quote.FinalAmount, 1e-9)
			assert.Equal(t, quote.DiscountAmount, quote.Savings)
			if !quote.IsEligible {
				assert.Zero(t, quote.DiscountAmount)
			}
			assert.GreaterOrEqual(t, quote.FinalAmount, 0.0)
		}
	}
}

func TestCalculateDiscount_MonotonicInSubtotal(t *testing.T) {
	calc := newCalculator(t)

	previous := -1.0
	for cents := 0; cents <= 5000; cents += 7 {
		quote, err := calc.CalculateDiscount(6, float64(cents)/100)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, quote.FinalAmount, previous, "subtotal=%d cents", cents)
		previous = quote.FinalAmount
	}
}

func TestCalculateDiscount_Idempotent(t *testing.T) {
	calc := newCalculator(t)

	first, err := calc.CalculateDiscount(7, 1818.18)
	require.NoError(t, err)
	second, err := calc.CalculateDiscount(7, 1818.18)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateDiscount_InvalidArguments(t *testing.T) {
	calc := newCalculator(t)

	_, err := calc.CalculateDiscount(-1, 1000)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = calc.CalculateDiscount(5, -0.01)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = calc.CalculateDiscount(5, math.NaN())
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = calc.CalculateDiscount(5, math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewCalculator_ValidatesConfig(t *testing.T) {
	_, err := NewCalculator(Config{MinimumRooms: -1, DiscountPercentage: 10})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewCalculator(Config{MinimumRooms: 5, DiscountPercentage: 100.5})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	calc, err := NewCalculator(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBlockMinimumRooms, calc.Config().MinimumRooms)
}

func TestConfig_ForHotel(t *testing.T) {
	defaults := Config{MinimumRooms: 5, DiscountPercentage: 15}

	assert.Equal(t, defaults, defaults.ForHotel(nil))
	assert.Equal(t, defaults, defaults.ForHotel(&domain.Hotel{}))

	hotel := &domain.Hotel{BlockMinimumRooms: ptr.Ptr(3)}
	assert.Equal(t, Config{MinimumRooms: 3, DiscountPercentage: 15}, defaults.ForHotel(hotel))

	hotel.BlockDiscountPercentage = ptr.Ptr(20.0)
	assert.Equal(t, Config{MinimumRooms: 3, DiscountPercentage: 20}, defaults.ForHotel(hotel))
}
