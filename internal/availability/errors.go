package availability

import "errors"

// ErrInvalidInterval is returned when an interval does not satisfy checkIn < checkOut
var ErrInvalidInterval = errors.New("availability: invalid interval, check-out must be after check-in")
