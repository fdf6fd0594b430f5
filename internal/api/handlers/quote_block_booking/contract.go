package quote_block_booking

import (
	"context"

	quoteBlockBooking "github.com/m04kA/SMC-HotelReservations/internal/usecase/quote_block_booking"
)

type QuoteBlockBookingUseCase interface {
	Execute(ctx context.Context, req *quoteBlockBooking.Request) (*quoteBlockBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
