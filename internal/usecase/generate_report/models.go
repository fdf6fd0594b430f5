package generate_report

import (
	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// Форматы вывода отчета
const (
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// Request модель запроса на построение отчета
type Request struct {
	UserID  int64       // ID менеджера отеля
	HotelID int64       // ID отеля
	Kind    string      // occupancy, financial, no_show, forecast
	From    *types.Date // Начало периода (включительно), не используется для forecast
	To      *types.Date // Конец периода (не включается), не используется для forecast
	Days    *int        // Горизонт прогноза в днях (только forecast)
	Format  string      // json (по умолчанию) или pdf
}

// Response модель ответа с отчетом
// Заполнен один из наборов строк в зависимости от Kind
type Response struct {
	Kind      domain.ReportKind
	Format    string
	HotelID   int64
	HotelName string
	From      types.Date
	To        types.Date

	Occupancy []domain.OccupancyDay
	Financial []domain.FinancialDay
	NoShows   []domain.NoShowEntry

	Summary Summary

	PDF      []byte // только для format=pdf
	Filename string // только для format=pdf
}

// Summary итоги отчета за период
type Summary struct {
	RoomNights       int     // продано номеро-ночей (occupancy, forecast)
	AvailableNights  int     // доступно номеро-ночей (occupancy, forecast)
	AverageOccupancy float64 // средняя загрузка, % (occupancy, forecast)
	Revenue          float64 // выручка до скидок (financial)
	Discounts        float64 // скидки (financial)
	Net              float64 // выручка после скидок (financial)
	Arrivals         int     // заезды за период без отмененных (no_show)
	NoShowCount      int     // неявки (no_show)
	NoShowRate       float64 // доля неявок, % (no_show)
	LostRevenue      float64 // потерянная выручка (no_show)
}
