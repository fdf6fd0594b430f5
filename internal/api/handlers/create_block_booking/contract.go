package create_block_booking

import (
	"context"

	createBlockBooking "github.com/m04kA/SMC-HotelReservations/internal/usecase/create_block_booking"
)

type CreateBlockBookingUseCase interface {
	Execute(ctx context.Context, req *createBlockBooking.Request) (*createBlockBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
