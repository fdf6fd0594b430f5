package list_hotels

import (
	"context"

	"github.com/m04kA/SMC-HotelReservations/internal/service/hotels/models"
)

type HotelService interface {
	List(ctx context.Context, city *string) (*models.HotelListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
