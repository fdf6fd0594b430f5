package quote_block_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelReservations/internal/availability"
	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/hotel"
	"github.com/m04kA/SMC-HotelReservations/internal/pricing"
)

// UseCase use case для расчета стоимости групповой брони агентства
// Ничего не записывает: показывает скидку и доступность номеров
type UseCase struct {
	hotelRepo       HotelRepository
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	defaults        pricing.Config
	maxRooms        int
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// defaults - глобальные параметры групповой скидки, отель может их переопределить
func NewUseCase(
	hotelRepo HotelRepository,
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	defaults pricing.Config,
	maxRooms int,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if maxRooms <= 0 {
		maxRooms = domain.MaxBlockRooms
	}
	return &UseCase{
		hotelRepo:       hotelRepo,
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		defaults:        defaults,
		maxRooms:        maxRooms,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет расчет групповой брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteBlockBooking: hotel=%d, rooms=%v, checkIn=%s, checkOut=%s",
		req.HotelID, req.RoomIDs, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	interval, err := validateRequest(req, uc.maxRooms)
	if err != nil {
		uc.logger.Warn("QuoteBlockBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateStay(interval, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("QuoteBlockBooking: stay validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем отель (для параметров скидки)
	hotel, err := uc.hotelRepo.GetByID(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			uc.logger.Warn("QuoteBlockBooking: hotel id=%d not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("QuoteBlockBooking: failed to get hotel id=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get hotel: %v", ErrInternal, err)
	}

	// 3. Получаем номера
	found, err := uc.roomRepo.GetByIDs(ctx, req.HotelID, req.RoomIDs)
	if err != nil {
		uc.logger.Error("QuoteBlockBooking: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	rooms, err := orderRooms(req.RoomIDs, found)
	if err != nil {
		uc.logger.Warn("QuoteBlockBooking: rooms rejected: %v", err)
		return nil, err
	}

	// 4. Рассчитываем стоимость с параметрами отеля (или глобальными)
	cfg := uc.defaults.ForHotel(hotel)
	calculator, err := pricing.NewCalculator(cfg)
	if err != nil {
		uc.logger.Error("QuoteBlockBooking: invalid block pricing for hotel id=%d: %v", hotel.ID, err)
		return nil, fmt.Errorf("%w: block pricing: %v", ErrInternal, err)
	}

	rates := make([]float64, len(rooms))
	for i, room := range rooms {
		rates[i] = room.NightlyRate
	}

	nights := interval.Nights()
	quote, lines, err := calculator.QuoteRooms(rates, nights)
	if err != nil {
		uc.logger.Error("QuoteBlockBooking: pricing failed: %v", err)
		return nil, fmt.Errorf("%w: pricing: %v", ErrInternal, err)
	}

	// 5. Проверяем доступность каждого номера
	reservations, err := uc.reservationRepo.GetWithFilter(ctx, domain.ReservationsFilter{
		HotelID: req.HotelID,
		RoomIDs: req.RoomIDs,
		From:    &interval.CheckIn,
		To:      &interval.CheckOut,
	})
	if err != nil {
		uc.logger.Error("QuoteBlockBooking: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}
	byRoom := availability.GroupByRoom(reservations)

	resp := &Response{
		HotelID:            req.HotelID,
		CheckIn:            interval.CheckIn,
		CheckOut:           interval.CheckOut,
		Nights:             nights,
		RoomCount:          quote.RoomCount,
		MinimumRooms:       quote.MinimumRooms,
		Subtotal:           quote.Subtotal,
		IsEligible:         quote.IsEligible,
		DiscountPercentage: quote.DiscountPercentage,
		DiscountAmount:     quote.DiscountAmount,
		FinalAmount:        quote.FinalAmount,
		Savings:            quote.Savings,
		Rooms:              make([]QuoteLine, len(rooms)),
		AllAvailable:       true,
	}

	for i, room := range rooms {
		available, err := availability.IsRoomAvailable(room.ID, interval, byRoom[room.ID])
		if err != nil {
			uc.logger.Error("QuoteBlockBooking: availability check failed: %v", err)
			return nil, fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}

		resp.Rooms[i] = QuoteLine{
			RoomID:         room.ID,
			Number:         room.Number,
			NightlyRate:    room.NightlyRate,
			Subtotal:       lines[i].Subtotal,
			DiscountAmount: lines[i].DiscountAmount,
			FinalAmount:    lines[i].FinalAmount,
			Available:      available,
		}
		resp.AllAvailable = resp.AllAvailable && available
	}

	uc.metrics.ObserveBlockQuote(quote.IsEligible)
	uc.logger.Info("QuoteBlockBooking: hotel=%d, rooms=%d, subtotal=%.2f, eligible=%t, discount=%.2f, final=%.2f",
		req.HotelID, quote.RoomCount, quote.Subtotal, quote.IsEligible, quote.DiscountAmount, quote.FinalAmount)

	return resp, nil
}
