package create_reservation

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
)

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	ObserveReservationCreated(kind string, count int)
}

// CodeGenerator генератор кодов подтверждения
type CodeGenerator interface {
	NewCode() string
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

// UUIDCodeGenerator генерирует коды подтверждения на основе UUID v4
type UUIDCodeGenerator struct{}

// NewCode возвращает новый код подтверждения
func (g *UUIDCodeGenerator) NewCode() string {
	return strings.ToUpper(uuid.NewString())
}
