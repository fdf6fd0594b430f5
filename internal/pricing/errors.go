package pricing

import "errors"

var (
	// ErrInvalidArgument is returned for a negative room count, a negative or non-finite amount
	ErrInvalidArgument = errors.New("pricing: invalid argument")

	// ErrInvalidConfig is returned when the block pricing configuration is out of range
	ErrInvalidConfig = errors.New("pricing: invalid block pricing config")
)
