package generate_report

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/availability"
	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// validateRequest проверяет идентификаторы, тип и формат отчета
func validateRequest(req *Request) (domain.ReportKind, string, error) {
	if req.UserID <= 0 {
		return "", "", fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.HotelID <= 0 {
		return "", "", fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	kind := domain.ReportKind(req.Kind)
	if !kind.IsValid() {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}

	format := req.Format
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatPDF {
		return "", "", fmt.Errorf("%w: format must be %s or %s", ErrInvalidInput, FormatJSON, FormatPDF)
	}

	return kind, format, nil
}

// resolvePeriod определяет период отчета
// Прогноз строится от текущей даты на Days дней вперед, остальные отчеты требуют from и to
func resolvePeriod(kind domain.ReportKind, req *Request, now time.Time) (availability.Interval, error) {
	if kind == domain.ReportForecast {
		days := domain.DefaultForecastDays
		if req.Days != nil {
			days = *req.Days
		}
		if days < 1 || days > domain.MaxForecastDays {
			return availability.Interval{}, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, domain.MaxForecastDays)
		}

		today := types.DateOf(now)
		return availability.NewInterval(today, today.AddDays(days))
	}

	if req.From == nil || req.To == nil {
		return availability.Interval{}, fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	period, err := availability.NewInterval(*req.From, *req.To)
	if err != nil {
		return availability.Interval{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if period.Nights() > domain.MaxReportDays {
		return availability.Interval{}, fmt.Errorf("%w: period must not exceed %d days", ErrInvalidInput, domain.MaxReportDays)
	}

	return period, nil
}
