package create_block_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelReservations/internal/availability"
	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/hotel"
	reservationRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelReservations/internal/pricing"
)

// metricsKind тип бронирования для метрик
const metricsKind = "block"

// UseCase use case для создания групповой брони агентства
type UseCase struct {
	hotelRepo        HotelRepository
	roomRepo         RoomRepository
	reservationRepo  ReservationRepository
	blockBookingRepo BlockBookingRepository
	txManager        TransactionManager
	defaults         pricing.Config
	maxRooms         int
	metrics          Metrics
	codeGenerator    CodeGenerator
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hotelRepo HotelRepository,
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	blockBookingRepo BlockBookingRepository,
	txManager TransactionManager,
	defaults pricing.Config,
	maxRooms int,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if maxRooms <= 0 {
		maxRooms = domain.MaxBlockRooms
	}
	return &UseCase{
		hotelRepo:        hotelRepo,
		roomRepo:         roomRepo,
		reservationRepo:  reservationRepo,
		blockBookingRepo: blockBookingRepo,
		txManager:        txManager,
		defaults:         defaults,
		maxRooms:         maxRooms,
		metrics:          metrics,
		codeGenerator:    &UUIDCodeGenerator{},
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания групповой брони
// Все номера бронируются атомарно: либо все, либо ни одного
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBlockBooking: agency=%d, hotel=%d, rooms=%v, checkIn=%s, checkOut=%s",
		req.AgencyUserID, req.HotelID, req.RoomIDs, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	interval, err := validateRequest(req, uc.maxRooms)
	if err != nil {
		uc.logger.Warn("CreateBlockBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateStay(interval, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBlockBooking: stay validation failed: %v", err)
		return nil, err
	}

	guests := req.GuestsPerRoom
	if guests == 0 {
		guests = 1
	}

	// 2. Получаем отель (для параметров скидки)
	hotel, err := uc.hotelRepo.GetByID(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			uc.logger.Warn("CreateBlockBooking: hotel id=%d not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("CreateBlockBooking: failed to get hotel id=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get hotel: %v", ErrInternal, err)
	}

	// 3. Получаем номера и проверяем их пригодность
	found, err := uc.roomRepo.GetByIDs(ctx, req.HotelID, req.RoomIDs)
	if err != nil {
		uc.logger.Error("CreateBlockBooking: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	rooms, err := orderRooms(req.RoomIDs, found, guests)
	if err != nil {
		uc.logger.Warn("CreateBlockBooking: rooms rejected: %v", err)
		return nil, err
	}

	// 4. Рассчитываем стоимость и распределяем скидку по номерам
	calculator, err := pricing.NewCalculator(uc.defaults.ForHotel(hotel))
	if err != nil {
		uc.logger.Error("CreateBlockBooking: invalid block pricing for hotel id=%d: %v", hotel.ID, err)
		return nil, fmt.Errorf("%w: block pricing: %v", ErrInternal, err)
	}

	rates := make([]float64, len(rooms))
	for i, room := range rooms {
		rates[i] = room.NightlyRate
	}

	quote, lines, err := calculator.QuoteRooms(rates, interval.Nights())
	if err != nil {
		uc.logger.Error("CreateBlockBooking: pricing failed: %v", err)
		return nil, fmt.Errorf("%w: pricing: %v", ErrInternal, err)
	}

	var (
		block   *domain.BlockBooking
		created = make([]*domain.Reservation, 0, len(rooms))
	)

	// 5. Проверка доступности и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created = created[:0]

		// 5.1. Получаем пересекающиеся бронирования всех номеров с блокировкой
		existing, err := uc.reservationRepo.GetWithFilter(txCtx, domain.ReservationsFilter{
			HotelID:   req.HotelID,
			RoomIDs:   req.RoomIDs,
			From:      &interval.CheckIn,
			To:        &interval.CheckOut,
			ForUpdate: true,
		})
		if err != nil {
			uc.logger.Error("CreateBlockBooking: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 5.2. Все номера должны быть свободны
		byRoom := availability.GroupByRoom(existing)
		var busy []string
		for _, room := range rooms {
			available, err := availability.IsRoomAvailable(room.ID, interval, byRoom[room.ID])
			if err != nil {
				uc.logger.Error("CreateBlockBooking: availability check failed: %v", err)
				return fmt.Errorf("%w: availability check: %v", ErrInternal, err)
			}
			if !available {
				busy = append(busy, room.Number)
			}
		}
		if len(busy) > 0 {
			uc.logger.Warn("CreateBlockBooking: rooms %v are not available for %s", busy, interval)
			return fmt.Errorf("%w: rooms %s", ErrRoomNotAvailable, strings.Join(busy, ", "))
		}

		// 5.3. Создаем групповую бронь
		block, err = uc.blockBookingRepo.Create(txCtx, &domain.BlockBooking{
			ConfirmationCode:   uc.codeGenerator.NewCode(),
			HotelID:            req.HotelID,
			AgencyUserID:       req.AgencyUserID,
			RoomCount:          quote.RoomCount,
			CheckIn:            interval.CheckIn,
			CheckOut:           interval.CheckOut,
			Subtotal:           quote.Subtotal,
			IsEligible:         quote.IsEligible,
			DiscountPercentage: quote.DiscountPercentage,
			DiscountAmount:     quote.DiscountAmount,
			FinalAmount:        quote.FinalAmount,
		})
		if err != nil {
			uc.logger.Error("CreateBlockBooking: failed to create block booking: %v", err)
			return fmt.Errorf("%w: failed to create block booking: %v", ErrInternal, err)
		}

		// 5.4. Создаем бронирование на каждый номер
		agencyID := req.AgencyUserID
		blockID := block.ID
		for i, room := range rooms {
			reservation := &domain.Reservation{
				ConfirmationCode: fmt.Sprintf("%s-%02d", block.ConfirmationCode, i+1),
				HotelID:          req.HotelID,
				RoomID:           room.ID,
				GuestUserID:      req.AgencyUserID,
				AgencyUserID:     &agencyID,
				BlockBookingID:   &blockID,
				CheckIn:          interval.CheckIn,
				CheckOut:         interval.CheckOut,
				Guests:           guests,
				Status:           domain.StatusReserved,
				RoomNumber:       room.Number,
				NightlyRate:      room.NightlyRate,
				TotalAmount:      lines[i].Subtotal,
				DiscountAmount:   lines[i].DiscountAmount,
				Notes:            req.Notes,
			}

			r, err := uc.reservationRepo.Create(txCtx, reservation)
			if err != nil {
				if errors.Is(err, reservationRepo.ErrRoomNotAvailable) {
					uc.logger.Warn("CreateBlockBooking: room %s taken concurrently", room.Number)
					return fmt.Errorf("%w: rooms %s", ErrRoomNotAvailable, room.Number)
				}
				uc.logger.Error("CreateBlockBooking: failed to create reservation for room %s: %v", room.Number, err)
				return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
			}
			created = append(created, r)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.ObserveBlockQuote(quote.IsEligible)
	uc.metrics.ObserveReservationCreated(metricsKind, len(created))
	uc.logger.Info("CreateBlockBooking: successfully created block id=%d, code=%s, rooms=%d, final=%.2f",
		block.ID, block.ConfirmationCode, len(created), block.FinalAmount)

	// Конвертируем в response
	resp := &Response{
		BlockBookingID:     block.ID,
		ConfirmationCode:   block.ConfirmationCode,
		HotelID:            block.HotelID,
		AgencyUserID:       block.AgencyUserID,
		CheckIn:            block.CheckIn,
		CheckOut:           block.CheckOut,
		Nights:             interval.Nights(),
		RoomCount:          block.RoomCount,
		Subtotal:           block.Subtotal,
		IsEligible:         block.IsEligible,
		DiscountPercentage: block.DiscountPercentage,
		DiscountAmount:     block.DiscountAmount,
		FinalAmount:        block.FinalAmount,
		Reservations:       make([]ReservedRoom, len(created)),
		CreatedAt:          block.CreatedAt,
	}
	for i, r := range created {
		resp.Reservations[i] = ReservedRoom{
			ReservationID:    r.ID,
			ConfirmationCode: r.ConfirmationCode,
			RoomID:           r.RoomID,
			RoomNumber:       r.RoomNumber,
			TotalAmount:      r.TotalAmount,
			DiscountAmount:   r.DiscountAmount,
			FinalAmount:      pricing.Round2(r.FinalAmount()),
		}
	}

	return resp, nil
}
