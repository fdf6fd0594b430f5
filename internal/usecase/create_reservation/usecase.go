package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelReservations/internal/availability"
	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/hotel"
	reservationRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelReservations/internal/pricing"
)

// metricsKind тип бронирования для метрик
const metricsKind = "single"

// UseCase use case для создания бронирования номера
type UseCase struct {
	hotelRepo       HotelRepository
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         Metrics
	codeGenerator   CodeGenerator
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hotelRepo HotelRepository,
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		hotelRepo:       hotelRepo,
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		codeGenerator:   &UUIDCodeGenerator{},
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, hotel=%d, room=%d, checkIn=%s, checkOut=%s, guests=%d",
		req.UserID, req.HotelID, req.RoomID, req.CheckIn, req.CheckOut, req.Guests)

	// 1. Валидация входных данных
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем период относительно текущей даты
	if err := validateStay(interval, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateReservation: stay validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем существование отеля
	if _, err := uc.hotelRepo.GetByID(ctx, req.HotelID); err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			uc.logger.Warn("CreateReservation: hotel id=%d not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("CreateReservation: failed to get hotel id=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get hotel: %v", ErrInternal, err)
	}

	// 4. Получаем номер и проверяем его пригодность
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if err := validateRoom(room, req.HotelID, req.Guests); err != nil {
		uc.logger.Warn("CreateReservation: room id=%d rejected: %v", req.RoomID, err)
		return nil, err
	}

	// 5. Считаем стоимость проживания
	nights := interval.Nights()
	total, err := pricing.StaySubtotal([]float64{room.NightlyRate}, nights)
	if err != nil {
		uc.logger.Error("CreateReservation: invalid nightly rate for room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: stay price: %v", ErrInternal, err)
	}

	var result *domain.Reservation

	// 6. Выполняем проверку доступности и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем бронирования номера, пересекающиеся с периодом, с блокировкой (FOR UPDATE)
		filter := domain.ReservationsFilter{
			HotelID:   req.HotelID,
			RoomIDs:   []int64{room.ID},
			From:      &interval.CheckIn,
			To:        &interval.CheckOut,
			ForUpdate: true,
		}

		existing, err := uc.reservationRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 6.2. Проверяем доступность номера
		intervals := make([]availability.ReservationInterval, 0, len(existing))
		for _, r := range existing {
			intervals = append(intervals, availability.FromReservation(r))
		}

		available, err := availability.IsRoomAvailable(room.ID, interval, intervals)
		if err != nil {
			uc.logger.Error("CreateReservation: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}
		if !available {
			uc.logger.Warn("CreateReservation: room id=%d is not available for %s", room.ID, interval)
			return ErrRoomNotAvailable
		}

		// 6.3. Создаем бронирование с денормализацией цены
		reservation := &domain.Reservation{
			ConfirmationCode: uc.codeGenerator.NewCode(),
			HotelID:          req.HotelID,
			RoomID:           room.ID,
			GuestUserID:      req.UserID,
			CheckIn:          interval.CheckIn,
			CheckOut:         interval.CheckOut,
			Guests:           req.Guests,
			Status:           domain.StatusReserved,
			RoomNumber:       room.Number,
			NightlyRate:      room.NightlyRate,
			TotalAmount:      total,
			Notes:            req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrRoomNotAvailable) {
				uc.logger.Warn("CreateReservation: room id=%d taken concurrently", room.ID)
				return ErrRoomNotAvailable
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.ObserveReservationCreated(metricsKind, 1)
	uc.logger.Info("CreateReservation: successfully created reservation id=%d, code=%s",
		result.ID, result.ConfirmationCode)

	// Конвертируем в response
	return &Response{
		ID:               result.ID,
		ConfirmationCode: result.ConfirmationCode,
		HotelID:          result.HotelID,
		RoomID:           result.RoomID,
		GuestUserID:      result.GuestUserID,
		CheckIn:          result.CheckIn,
		CheckOut:         result.CheckOut,
		Nights:           result.Nights(),
		Guests:           result.Guests,
		Status:           string(result.Status),
		RoomNumber:       result.RoomNumber,
		NightlyRate:      result.NightlyRate,
		TotalAmount:      result.TotalAmount,
		DiscountAmount:   result.DiscountAmount,
		FinalAmount:      pricing.Round2(result.FinalAmount()),
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}
