package rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) (*domain.Room, error)
}

// HotelRepository интерфейс репозитория отелей (для проверки прав менеджера)
type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
