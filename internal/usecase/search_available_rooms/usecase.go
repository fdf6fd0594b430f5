package search_available_rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelReservations/internal/availability"
	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/hotel"
	"github.com/m04kA/SMC-HotelReservations/internal/pricing"
)

// Исходы поиска для метрик
const (
	outcomeFound = "found"
	outcomeEmpty = "empty"
	outcomeError = "error"
)

// UseCase use case для поиска свободных номеров отеля на период
type UseCase struct {
	hotelRepo       HotelRepository
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hotelRepo HotelRepository,
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		hotelRepo:       hotelRepo,
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет поиск свободных номеров
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchAvailableRooms: hotel=%d, checkIn=%s, checkOut=%s, guests=%v",
		req.HotelID, req.CheckIn, req.CheckOut, req.Guests)

	resp, err := uc.execute(ctx, req)
	switch {
	case err != nil:
		uc.metrics.ObserveAvailabilitySearch(outcomeError)
	case len(resp.Rooms) == 0:
		uc.metrics.ObserveAvailabilitySearch(outcomeEmpty)
	default:
		uc.metrics.ObserveAvailabilitySearch(outcomeFound)
	}
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SearchAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем период относительно текущей даты
	if err := validateStay(interval, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("SearchAvailableRooms: stay validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем существование отеля
	if _, err := uc.hotelRepo.GetByID(ctx, req.HotelID); err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			uc.logger.Warn("SearchAvailableRooms: hotel id=%d not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("SearchAvailableRooms: failed to get hotel id=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get hotel: %v", ErrInternal, err)
	}

	// 4. Получаем номера отеля
	rooms, err := uc.roomRepo.ListByHotel(ctx, req.HotelID)
	if err != nil {
		uc.logger.Error("SearchAvailableRooms: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	// 5. Получаем неотмененные бронирования, пересекающиеся с периодом
	filter := domain.ReservationsFilter{
		HotelID: req.HotelID,
		From:    &interval.CheckIn,
		To:      &interval.CheckOut,
	}
	reservations, err := uc.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("SearchAvailableRooms: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Отбираем свободные номера подходящей вместимости
	nights := interval.Nights()
	available := make([]AvailableRoom, 0)

	for room, err := range availability.FilterAvailableRooms(rooms, interval, availability.GroupByRoom(reservations)) {
		if err != nil {
			// Битая запись в БД - это внутренняя ошибка, а не ошибка клиента
			uc.logger.Error("SearchAvailableRooms: availability check failed: %v", err)
			return nil, fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}

		if req.Guests != nil && !room.CanHost(*req.Guests) {
			continue
		}

		stayPrice, err := pricing.StaySubtotal([]float64{room.NightlyRate}, nights)
		if err != nil {
			uc.logger.Error("SearchAvailableRooms: invalid nightly rate for room id=%d: %v", room.ID, err)
			return nil, fmt.Errorf("%w: stay price for room %d: %v", ErrInternal, room.ID, err)
		}

		available = append(available, AvailableRoom{
			RoomID:      room.ID,
			Number:      room.Number,
			Type:        string(room.Type),
			Capacity:    room.Capacity,
			Floor:       room.Floor,
			NightlyRate: room.NightlyRate,
			StayPrice:   stayPrice,
		})
	}

	uc.logger.Info("SearchAvailableRooms: %d of %d rooms available in hotel=%d for %s",
		len(available), len(rooms), req.HotelID, interval)

	return &Response{
		HotelID:  req.HotelID,
		CheckIn:  interval.CheckIn,
		CheckOut: interval.CheckOut,
		Nights:   nights,
		Rooms:    available,
	}, nil
}
