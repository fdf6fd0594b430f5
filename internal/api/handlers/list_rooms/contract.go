package list_rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelReservations/internal/service/rooms/models"
)

type RoomService interface {
	ListByHotel(ctx context.Context, hotelID, userID int64) (*models.RoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
