package generate_report

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/hotel"
)

// UseCase use case для построения отчетов отеля
type UseCase struct {
	hotelRepo       HotelRepository
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	renderer        TableRenderer
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hotelRepo HotelRepository,
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	renderer TableRenderer,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		hotelRepo:       hotelRepo,
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		renderer:        renderer,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute строит отчет за период
// Доступно только менеджерам отеля
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateReport: user=%d, hotel=%d, kind=%s, format=%s", req.UserID, req.HotelID, req.Kind, req.Format)

	// 1. Валидация входных данных
	kind, format, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GenerateReport: validation failed: %v", err)
		return nil, err
	}

	period, err := resolvePeriod(kind, req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("GenerateReport: invalid period: %v", err)
		return nil, err
	}

	// 2. Проверяем отель и права доступа
	hotel, err := uc.hotelRepo.GetByID(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			uc.logger.Warn("GenerateReport: hotel id=%d not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("GenerateReport: failed to get hotel id=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get hotel: %v", ErrInternal, err)
	}

	if !hotel.IsManager(req.UserID) {
		uc.logger.Warn("GenerateReport: user=%d is not a manager of hotel id=%d", req.UserID, req.HotelID)
		return nil, ErrAccessDenied
	}

	// 3. Получаем бронирования, пересекающиеся с периодом (без отмененных)
	reservations, err := uc.reservationRepo.GetWithFilter(ctx, domain.ReservationsFilter{
		HotelID: req.HotelID,
		From:    &period.CheckIn,
		To:      &period.CheckOut,
	})
	if err != nil {
		uc.logger.Error("GenerateReport: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	resp := &Response{
		Kind:      kind,
		Format:    format,
		HotelID:   hotel.ID,
		HotelName: hotel.Name,
		From:      period.CheckIn,
		To:        period.CheckOut,
	}

	// 4. Строим строки отчета
	switch kind {
	case domain.ReportOccupancy, domain.ReportForecast:
		roomsTotal, err := uc.roomRepo.CountByHotel(ctx, req.HotelID)
		if err != nil {
			uc.logger.Error("GenerateReport: failed to count rooms: %v", err)
			return nil, fmt.Errorf("%w: failed to count rooms: %v", ErrInternal, err)
		}

		counts := isSold
		if kind == domain.ReportForecast {
			counts = isOnTheBooks
		}
		resp.Occupancy, resp.Summary = buildOccupancy(period, roomsTotal, reservations, counts)

	case domain.ReportFinancial:
		resp.Financial, resp.Summary, err = buildFinancial(period, reservations)
		if err != nil {
			uc.logger.Error("GenerateReport: failed to build financial report: %v", err)
			return nil, fmt.Errorf("%w: financial report: %v", ErrInternal, err)
		}

	case domain.ReportNoShow:
		resp.NoShows, resp.Summary = buildNoShow(period, reservations)
	}

	// 5. Рендерим PDF при необходимости
	if format == FormatPDF {
		resp.PDF, err = uc.renderer.RenderTable(toDocument(resp))
		if err != nil {
			uc.logger.Error("GenerateReport: failed to render pdf: %v", err)
			return nil, fmt.Errorf("%w: render pdf: %v", ErrInternal, err)
		}
		resp.Filename = filename(resp)
	}

	uc.metrics.ObserveReport(string(kind), format)
	uc.logger.Info("GenerateReport: hotel=%d, kind=%s, period=%s, reservations=%d", req.HotelID, kind, period, len(reservations))

	return resp, nil
}
