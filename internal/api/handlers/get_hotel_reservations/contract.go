package get_hotel_reservations

import (
	"context"

	"github.com/m04kA/SMC-HotelReservations/internal/service/reservations/models"
)

type ReservationService interface {
	GetHotelReservations(ctx context.Context, req *models.GetHotelReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
