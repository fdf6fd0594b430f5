package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/internal/infra/report/pdf"
	hotelRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/hotel"
	reservationRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelReservations/internal/pricing"
	"github.com/m04kA/SMC-HotelReservations/internal/service/reservations/models"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// Service сервис для работы с бронированиями номеров
type Service struct {
	reservationRepo ReservationRepository
	hotelRepo       HotelRepository
	renderer        ConfirmationRenderer
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	hotelRepo HotelRepository,
	renderer ConfirmationRenderer,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		hotelRepo:       hotelRepo,
		renderer:        renderer,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Доступно гостю, агентству, оформившему бронь, и менеджерам отеля
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.getReservation(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := s.checkUserAccess(ctx, reservation, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetGuestReservations получает историю бронирований гостя
// Опционально фильтрует по статусу
func (s *Service) GetGuestReservations(ctx context.Context, req *models.GetGuestReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetGuestReservations: fetching reservations for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := domain.ParseReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetGuestReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByGuestID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetGuestReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetGuestReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetGuestReservations: successfully fetched %d reservations for user=%d", len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// GetHotelReservations получает бронирования отеля с фильтрацией по периоду и статусу
// Доступно только менеджерам отеля
func (s *Service) GetHotelReservations(ctx context.Context, req *models.GetHotelReservationsRequest) (*models.ReservationListResponse, error) {
	logMsg := fmt.Sprintf("GetHotelReservations: fetching reservations for hotel=%d, user=%d", req.HotelID, req.UserID)
	if req.From != nil && req.To != nil {
		logMsg += fmt.Sprintf(", period=[%s, %s)", req.From, req.To)
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	if err := s.checkManagerAccess(ctx, req.HotelID, req.UserID); err != nil {
		return nil, err
	}

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		s.logger.Warn("GetHotelReservations: invalid period [%s, %s)", req.From, req.To)
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetHotelReservations: invalid filter for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetHotelReservations: repository error for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: GetHotelReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetHotelReservations: successfully fetched %d reservations for hotel=%d", len(reservations), req.HotelID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Гость и агентство могут отменить своё бронирование, менеджер - любое бронирование отеля
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	reservation, err := s.getReservation(ctx, "Cancel", reservationID)
	if err != nil {
		return err
	}

	if err := s.checkUserAccess(ctx, reservation, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to cancel reservation id=%d", req.UserID, reservationID)
		return err
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, reservation.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, reservationID, reservation.Status, req.CancellationReason); err != nil {
		return s.mapUpdateError("Cancel", reservationID, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return nil
}

// UpdateStatus переводит бронирование в новый статус
// Доступно только менеджерам отеля; допустимые переходы задает domain.ReservationStatus
func (s *Service) UpdateStatus(ctx context.Context, reservationID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s by user=%d",
		reservationID, req.Status, req.UserID)

	newStatus, err := domain.ParseReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, reservationID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	reservation, err := s.getReservation(ctx, "UpdateStatus", reservationID)
	if err != nil {
		return err
	}

	if err := s.checkManagerAccess(ctx, reservation.HotelID, req.UserID); err != nil {
		return err
	}

	if !reservation.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for reservation id=%d",
			reservation.Status, newStatus, reservationID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, newStatus)
	}

	// Заезд и no-show фиксируются не раньше даты заезда
	if newStatus == domain.StatusCheckedIn || newStatus == domain.StatusNoShow {
		today := types.DateOf(s.timeProvider.Now())
		if today.Before(reservation.CheckIn) {
			s.logger.Warn("UpdateStatus: %s before check-in date %s for reservation id=%d",
				newStatus, reservation.CheckIn, reservationID)
			return ErrTooEarly
		}
	}

	if newStatus == domain.StatusCancelled {
		err = s.reservationRepo.Cancel(ctx, reservationID, reservation.Status, "")
	} else {
		err = s.reservationRepo.UpdateStatus(ctx, reservationID, reservation.Status, newStatus)
	}
	if err != nil {
		return s.mapUpdateError("UpdateStatus", reservationID, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", reservationID, newStatus)
	return nil
}

// GetConfirmationPDF формирует PDF подтверждение бронирования с QR-кодом
// Права доступа такие же, как у GetByID
func (s *Service) GetConfirmationPDF(ctx context.Context, reservationID int64, userID int64) ([]byte, string, error) {
	s.logger.Info("GetConfirmationPDF: rendering reservation id=%d for user=%d", reservationID, userID)

	reservation, err := s.getReservation(ctx, "GetConfirmationPDF", reservationID)
	if err != nil {
		return nil, "", err
	}

	hotel, err := s.getHotel(ctx, reservation.HotelID)
	if err != nil {
		return nil, "", err
	}

	if !s.canAccess(reservation, hotel, userID) {
		s.logger.Warn("GetConfirmationPDF: access denied for user=%d to reservation id=%d", userID, reservationID)
		return nil, "", ErrAccessDenied
	}

	data, err := s.renderer.RenderConfirmation(pdf.Confirmation{
		ConfirmationCode: reservation.ConfirmationCode,
		HotelName:        hotel.Name,
		HotelAddress:     hotel.Address,
		RoomNumber:       reservation.RoomNumber,
		CheckIn:          reservation.CheckIn.String(),
		CheckOut:         reservation.CheckOut.String(),
		Nights:           reservation.Nights(),
		Guests:           reservation.Guests,
		Status:           string(reservation.Status),
		TotalAmount:      formatMoney(reservation.TotalAmount),
		DiscountAmount:   formatMoney(reservation.DiscountAmount),
		FinalAmount:      formatMoney(reservation.FinalAmount()),
		QRPayload:        fmt.Sprintf("%s|%d|%s|%s", reservation.ConfirmationCode, reservation.HotelID, reservation.CheckIn, reservation.CheckOut),
	})
	if err != nil {
		s.logger.Error("GetConfirmationPDF: failed to render reservation id=%d: %v", reservationID, err)
		return nil, "", fmt.Errorf("%w: GetConfirmationPDF - render: %v", ErrInternal, err)
	}

	filename := fmt.Sprintf("reservation-%s.pdf", reservation.ConfirmationCode)
	s.logger.Info("GetConfirmationPDF: successfully rendered reservation id=%d (%d bytes)", reservationID, len(data))
	return data, filename, nil
}

// Вспомогательные методы

func (s *Service) getReservation(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}

func (s *Service) getHotel(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("getHotel: hotel id=%d not found", hotelID)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("getHotel: failed to get hotel id=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: getHotel - failed to get hotel: %v", ErrInternal, err)
	}
	return hotel, nil
}

// mapUpdateError переводит ошибки репозитория при изменении статуса в ошибки сервиса
func (s *Service) mapUpdateError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, reservationRepo.ErrReservationNotFound):
		s.logger.Warn("%s: reservation id=%d not found during update", op, id)
		return ErrReservationNotFound
	case errors.Is(err, reservationRepo.ErrStatusConflict):
		s.logger.Warn("%s: reservation id=%d status changed concurrently", op, id)
		return ErrStatusConflict
	}
	s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// checkUserAccess проверяет, что пользователь - гость, агентство или менеджер отеля
func (s *Service) checkUserAccess(ctx context.Context, reservation *domain.Reservation, userID int64) error {
	if isOwner(reservation, userID) {
		return nil
	}

	hotel, err := s.getHotel(ctx, reservation.HotelID)
	if err != nil {
		return err
	}
	if !s.canAccess(reservation, hotel, userID) {
		return ErrAccessDenied
	}
	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером отеля
func (s *Service) checkManagerAccess(ctx context.Context, hotelID int64, userID int64) error {
	hotel, err := s.getHotel(ctx, hotelID)
	if err != nil {
		return err
	}

	if !hotel.IsManager(userID) {
		s.logger.Warn("checkManagerAccess: user=%d is not a manager of hotel=%d", userID, hotelID)
		return ErrAccessDenied
	}

	return nil
}

func (s *Service) canAccess(reservation *domain.Reservation, hotel *domain.Hotel, userID int64) bool {
	return isOwner(reservation, userID) || hotel.IsManager(userID)
}

func isOwner(reservation *domain.Reservation, userID int64) bool {
	if reservation.GuestUserID == userID {
		return true
	}
	return reservation.AgencyUserID != nil && *reservation.AgencyUserID == userID
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", pricing.Round2(amount))
}
