package pricing

import "fmt"

// Line is the price of one room within a block quote
type Line struct {
	Subtotal       float64
	DiscountAmount float64
	FinalAmount    float64
}

// QuoteRooms prices a block of rooms booked for the same nights.
//
// The block discount is computed once on the combined subtotal and then
// apportioned to the rooms pro rata to their subtotals, so the lines always
// add up to the quote exactly.
func (c *Calculator) QuoteRooms(nightlyRates []float64, nights int) (Quote, []Line, error) {
	if nights < 0 {
		return Quote{}, nil, fmt.Errorf("%w: nights must not be negative, got %d", ErrInvalidArgument, nights)
	}

	subtotals := make([]float64, len(nightlyRates))
	for i, rate := range nightlyRates {
		subtotal, err := StaySubtotal([]float64{rate}, nights)
		if err != nil {
			return Quote{}, nil, err
		}
		subtotals[i] = subtotal
	}

	total, err := StaySubtotal(nightlyRates, nights)
	if err != nil {
		return Quote{}, nil, err
	}

	quote, err := c.CalculateDiscount(len(nightlyRates), total)
	if err != nil {
		return Quote{}, nil, err
	}

	discounts, err := Apportion(quote.DiscountAmount, subtotals)
	if err != nil {
		return Quote{}, nil, err
	}

	lines := make([]Line, len(subtotals))
	for i := range subtotals {
		lines[i] = Line{
			Subtotal:       subtotals[i],
			DiscountAmount: discounts[i],
			FinalAmount:    fromCents(toCents(subtotals[i]) - toCents(discounts[i])),
		}
	}

	return quote, lines, nil
}
