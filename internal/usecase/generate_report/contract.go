package generate_report

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/internal/infra/report/pdf"
)

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	CountByHotel(ctx context.Context, hotelID int64) (int, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// TableRenderer рендерер табличных PDF-документов
type TableRenderer interface {
	RenderTable(doc pdf.Document) ([]byte, error)
}

// Metrics бизнес-метрики отчетов
type Metrics interface {
	ObserveReport(kind, format string)
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
