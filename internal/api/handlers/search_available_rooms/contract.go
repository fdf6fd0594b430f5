package search_available_rooms

import (
	"context"

	searchAvailableRooms "github.com/m04kA/SMC-HotelReservations/internal/usecase/search_available_rooms"
)

type SearchAvailableRoomsUseCase interface {
	Execute(ctx context.Context, req *searchAvailableRooms.Request) (*searchAvailableRooms.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
