package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteRooms_AppliesDiscountAcrossRooms(t *testing.T) {
	calc := newCalculator(t)

	quote, lines, err := calc.QuoteRooms([]float64{100, 100, 100, 100, 100, 120}, 3)
	require.NoError(t, err)

	assert.True(t, quote.IsEligible)
	assert.Equal(t, 1860.0, quote.Subtotal)
	assert.Equal(t, 279.0, quote.DiscountAmount)
	assert.Equal(t, 1581.0, quote.FinalAmount)

	require.Len(t, lines, 6)
	for _, line := range lines[:5] {
		assert.Equal(t, Line{Subtotal: 300, DiscountAmount: 45, FinalAmount: 255}, line)
	}
	assert.Equal(t, Line{Subtotal: 360, DiscountAmount: 54, FinalAmount: 306}, lines[5])
}

func TestQuoteRooms_RemainderGoesToLastRoom(t *testing.T) {
	calc, err := NewCalculator(Config{MinimumRooms: 3, DiscountPercentage: 10})
	require.NoError(t, err)

	quote, lines, err := calc.QuoteRooms([]float64{33.33, 33.33, 33.34}, 1)
	require.NoError(t, err)

	assert.Equal(t, 10.0, quote.DiscountAmount)
	assert.Equal(t, []float64{3.33, 3.33, 3.34}, []float64{lines[0].DiscountAmount, lines[1].DiscountAmount, lines[2].DiscountAmount})

	var discountCents, finalCents int64
	for _, line := range lines {
		discountCents += toCents(line.DiscountAmount)
		finalCents += toCents(line.FinalAmount)
	}
	assert.Equal(t, toCents(quote.DiscountAmount), discountCents)
	assert.Equal(t, toCents(quote.FinalAmount), finalCents)
}

func TestQuoteRooms_BelowThresholdIsFullPrice(t *testing.T) {
	calc := newCalculator(t)

	quote, lines, err := calc.QuoteRooms([]float64{80, 90}, 2)
	require.NoError(t, err)

	assert.False(t, quote.IsEligible)
	assert.Equal(t, 340.0, quote.FinalAmount)
	assert.Equal(t, []Line{
		{Subtotal: 160, FinalAmount: 160},
		{Subtotal: 180, FinalAmount: 180},
	}, lines)
}

func TestQuoteRooms_InvalidArguments(t *testing.T) {
	calc := newCalculator(t)

	_, _, err := calc.QuoteRooms([]float64{100}, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, _, err = calc.QuoteRooms([]float64{-5}, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
