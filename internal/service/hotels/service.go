package hotels

import (
	"context"
	"errors"
	"fmt"

	hotelRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/hotel"
	"github.com/m04kA/SMC-HotelReservations/internal/pricing"
	"github.com/m04kA/SMC-HotelReservations/internal/service/hotels/models"
)

// Service сервис для работы с отелями
type Service struct {
	hotelRepo HotelRepository
	defaults  pricing.Config
	logger    Logger
}

// NewService создает новый экземпляр сервиса отелей
// defaults - глобальные параметры групповой скидки, показываются для отелей без переопределения
func NewService(
	hotelRepo HotelRepository,
	defaults pricing.Config,
	logger Logger,
) *Service {
	return &Service{
		hotelRepo: hotelRepo,
		defaults:  defaults,
		logger:    logger,
	}
}

// Create создает новый отель
// Пользователь, создавший отель, становится его менеджером
func (s *Service) Create(ctx context.Context, req *models.CreateHotelRequest) (*models.HotelResponse, error) {
	s.logger.Info("Create: creating hotel name=%q city=%q by user=%d", req.Name, req.City, req.UserID)

	hotel := req.ToDomainHotel()
	if err := validateHotel(hotel); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.hotelRepo.Create(ctx, hotel)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created hotel id=%d", created.ID)
	return models.FromDomainHotel(created, s.defaults), nil
}

// GetByID получает отель по ID
// Публичный метод - доступен всем
func (s *Service) GetByID(ctx context.Context, id int64) (*models.HotelResponse, error) {
	s.logger.Info("GetByID: fetching hotel id=%d", id)

	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("GetByID: hotel id=%d not found", id)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("GetByID: repository error for hotel id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHotel(hotel, s.defaults), nil
}

// List получает список отелей, опционально фильтруя по городу
// Публичный метод - доступен всем
func (s *Service) List(ctx context.Context, city *string) (*models.HotelListResponse, error) {
	s.logger.Info("List: fetching hotels, city=%v", city)

	hotels, err := s.hotelRepo.List(ctx, city)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d hotels", len(hotels))
	return models.FromDomainHotelList(hotels, s.defaults), nil
}

// Update обновляет отель
// Доступно только менеджерам отеля
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateHotelRequest) (*models.HotelResponse, error) {
	s.logger.Info("Update: updating hotel id=%d by user=%d", id, req.UserID)

	// 1. Получаем отель
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("Update: hotel id=%d not found", id)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("Update: repository error for hotel id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа (только менеджер отеля)
	if !hotel.IsManager(req.UserID) {
		s.logger.Warn("Update: user=%d is not a manager of hotel=%d", req.UserID, id)
		return nil, ErrAccessDenied
	}

	// 3. Применяем изменения и валидируем результат
	req.ApplyToHotel(hotel)
	if err := validateHotel(hotel); err != nil {
		s.logger.Warn("Update: validation failed for hotel id=%d: %v", id, err)
		return nil, err
	}

	// 4. Сохраняем
	updated, err := s.hotelRepo.Update(ctx, hotel)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("Update: hotel id=%d not found during update", id)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("Update: repository error for hotel id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated hotel id=%d", id)
	return models.FromDomainHotel(updated, s.defaults), nil
}
