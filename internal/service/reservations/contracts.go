package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/internal/infra/report/pdf"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByGuestID(ctx context.Context, guestUserID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, from domain.ReservationStatus, reason string) error
}

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// ConfirmationRenderer формирует PDF подтверждения бронирования
type ConfirmationRenderer interface {
	RenderConfirmation(c pdf.Confirmation) ([]byte, error)
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
