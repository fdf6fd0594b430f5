package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// roundHalfUp returns v scaled by 10^places and rounded half up.
// Rounding works on the shortest decimal form of v, so 9.995 becomes 1000 cents
// even though its binary value is slightly below 9.995.
func roundHalfUp(v float64, places int) int64 {
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)

	intPart, frac, _ := strings.Cut(s, ".")
	if len(frac) < places+1 {
		frac += strings.Repeat("0", places+1-len(frac))
	}

	n, _ := strconv.ParseInt(intPart+frac[:places], 10, 64)
	if frac[places] >= '5' {
		n++
	}
	if v < 0 {
		return -n
	}
	return n
}

// toCents converts an amount to whole cents, rounding half up
func toCents(amount float64) int64 {
	return roundHalfUp(amount, 2)
}

func fromCents(cents int64) float64 {
	return float64(cents) / 100
}

// Round2 rounds a non-negative amount to 2 decimal places, half up
func Round2(amount float64) float64 {
	return fromCents(toCents(amount))
}

func validateAmount(name string, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidArgument, name)
	}
	if amount < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %.2f", ErrInvalidArgument, name, amount)
	}
	return nil
}

// StaySubtotal sums nightly rates over the given number of nights
func StaySubtotal(nightlyRates []float64, nights int) (float64, error) {
	if nights < 0 {
		return 0, fmt.Errorf("%w: nights must not be negative, got %d", ErrInvalidArgument, nights)
	}

	var cents int64
	for _, rate := range nightlyRates {
		if err := validateAmount("nightly rate", rate); err != nil {
			return 0, err
		}
		cents += toCents(rate) * int64(nights)
	}
	return fromCents(cents), nil
}

// Apportion splits total across parts proportionally to weights.
// Every share is rounded to cents and the remainder goes to the last part,
// so the shares always add up to total exactly.
func Apportion(total float64, weights []float64) ([]float64, error) {
	if err := validateAmount("total", total); err != nil {
		return nil, err
	}
	if len(weights) == 0 {
		return []float64{}, nil
	}

	var weightSum float64
	for _, w := range weights {
		if err := validateAmount("weight", w); err != nil {
			return nil, err
		}
		weightSum += w
	}

	totalCents := toCents(total)
	shares := make([]float64, len(weights))
	if weightSum == 0 {
		shares[len(shares)-1] = fromCents(totalCents)
		return shares, nil
	}

	var assigned int64
	for i, w := range weights[:len(weights)-1] {
		cents := roundHalfUp(float64(totalCents)*w/weightSum, 0)
		shares[i] = fromCents(cents)
		assigned += cents
	}
	shares[len(shares)-1] = fromCents(totalCents - assigned)

	return shares, nil
}
