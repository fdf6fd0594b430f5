package update_room

import (
	"context"

	"github.com/m04kA/SMC-HotelReservations/internal/service/rooms/models"
)

type RoomService interface {
	Update(ctx context.Context, roomID int64, req *models.UpdateRoomRequest) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
