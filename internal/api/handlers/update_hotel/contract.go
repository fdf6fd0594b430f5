package update_hotel

import (
	"context"

	"github.com/m04kA/SMC-HotelReservations/internal/service/hotels/models"
)

type HotelService interface {
	Update(ctx context.Context, id int64, req *models.UpdateHotelRequest) (*models.HotelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
