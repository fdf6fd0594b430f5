package rooms

import (
	"context"
	"errors"
	"fmt"

	hotelRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/hotel"
	roomRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelReservations/internal/service/rooms/models"
)

// Service сервис для управления номерами отеля
type Service struct {
	roomRepo  RoomRepository
	hotelRepo HotelRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(
	roomRepo RoomRepository,
	hotelRepo HotelRepository,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:  roomRepo,
		hotelRepo: hotelRepo,
		logger:    logger,
	}
}

// Create добавляет номер в отель
// Доступно только менеджерам отеля
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room number=%q in hotel=%d by user=%d", req.Number, req.HotelID, req.UserID)

	if err := s.checkManagerAccess(ctx, req.HotelID, req.UserID); err != nil {
		return nil, err
	}

	room, err := buildRoom(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrDuplicateRoomNumber) {
			s.logger.Warn("Create: room number=%q already exists in hotel=%d", room.Number, req.HotelID)
			return nil, ErrDuplicateRoomNumber
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d in hotel=%d", created.ID, req.HotelID)
	return models.FromDomainRoom(created), nil
}

// ListByHotel получает все номера отеля, включая номера на обслуживании
// Доступно только менеджерам отеля
func (s *Service) ListByHotel(ctx context.Context, hotelID, userID int64) (*models.RoomListResponse, error) {
	s.logger.Info("ListByHotel: fetching rooms for hotel=%d by user=%d", hotelID, userID)

	if err := s.checkManagerAccess(ctx, hotelID, userID); err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.ListByHotel(ctx, hotelID)
	if err != nil {
		s.logger.Error("ListByHotel: repository error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: ListByHotel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByHotel: successfully fetched %d rooms for hotel=%d", len(rooms), hotelID)
	return models.FromDomainRoomList(rooms), nil
}

// Update обновляет номер, в том числе его статус (например, вывод на обслуживание)
// Доступно только менеджерам отеля
func (s *Service) Update(ctx context.Context, roomID int64, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%d in hotel=%d by user=%d", roomID, req.HotelID, req.UserID)

	if err := s.checkManagerAccess(ctx, req.HotelID, req.UserID); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Номер другого отеля для этого менеджера не существует
	if room.HotelID != req.HotelID {
		s.logger.Warn("Update: room id=%d does not belong to hotel=%d", roomID, req.HotelID)
		return nil, ErrRoomNotFound
	}

	if err := applyUpdate(room, req); err != nil {
		s.logger.Warn("Update: validation failed for room id=%d: %v", roomID, err)
		return nil, err
	}

	updated, err := s.roomRepo.Update(ctx, room)
	if err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			s.logger.Warn("Update: room id=%d not found during update", roomID)
			return nil, ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrDuplicateRoomNumber):
			s.logger.Warn("Update: room number=%q already exists in hotel=%d", room.Number, req.HotelID)
			return nil, ErrDuplicateRoomNumber
		}
		s.logger.Error("Update: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated room id=%d, status=%s", roomID, updated.Status)
	return models.FromDomainRoom(updated), nil
}

// checkManagerAccess проверяет, что пользователь является менеджером отеля
func (s *Service) checkManagerAccess(ctx context.Context, hotelID, userID int64) error {
	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("checkManagerAccess: hotel id=%d not found", hotelID)
			return ErrHotelNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get hotel id=%d: %v", hotelID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get hotel: %v", ErrInternal, err)
	}

	if !hotel.IsManager(userID) {
		s.logger.Warn("checkManagerAccess: user=%d is not a manager of hotel=%d", userID, hotelID)
		return ErrAccessDenied
	}

	return nil
}
