package quote_block_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
)

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByIDs(ctx context.Context, hotelID int64, ids []int64) ([]*domain.Room, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// Metrics бизнес-метрики расчета групповой скидки
type Metrics interface {
	ObserveBlockQuote(eligible bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
