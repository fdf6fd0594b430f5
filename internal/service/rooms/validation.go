package rooms

import (
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/internal/service/rooms/models"
)

// buildRoom собирает domain модель из запроса на создание
func buildRoom(req *models.CreateRoomRequest) (*domain.Room, error) {
	roomType, err := domain.ParseRoomType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: type %q", ErrInvalidInput, req.Type)
	}

	status := domain.RoomStatusAvailable
	if req.Status != nil {
		status, err = domain.ParseRoomStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: status %q", ErrInvalidInput, *req.Status)
		}
	}

	room := &domain.Room{
		HotelID:     req.HotelID,
		Number:      strings.TrimSpace(req.Number),
		Type:        roomType,
		Capacity:    req.Capacity,
		NightlyRate: req.NightlyRate,
		Status:      status,
		Floor:       req.Floor,
	}

	return room, validateRoom(room)
}

// applyUpdate применяет изменения из запроса к номеру
func applyUpdate(room *domain.Room, req *models.UpdateRoomRequest) error {
	if req.Number != nil {
		room.Number = strings.TrimSpace(*req.Number)
	}
	if req.Type != nil {
		roomType, err := domain.ParseRoomType(*req.Type)
		if err != nil {
			return fmt.Errorf("%w: type %q", ErrInvalidInput, *req.Type)
		}
		room.Type = roomType
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.NightlyRate != nil {
		room.NightlyRate = *req.NightlyRate
	}
	if req.Status != nil {
		status, err := domain.ParseRoomStatus(*req.Status)
		if err != nil {
			return fmt.Errorf("%w: status %q", ErrInvalidInput, *req.Status)
		}
		room.Status = status
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}

	return validateRoom(room)
}

func validateRoom(room *domain.Room) error {
	if room.Number == "" {
		return fmt.Errorf("%w: number is required", ErrInvalidInput)
	}
	if room.Capacity < 1 || room.Capacity > domain.MaxGuestsPerRoom {
		return fmt.Errorf("%w: capacity must be between 1 and %d", ErrInvalidInput, domain.MaxGuestsPerRoom)
	}
	if math.IsNaN(room.NightlyRate) || math.IsInf(room.NightlyRate, 0) || room.NightlyRate < 0 {
		return fmt.Errorf("%w: nightly rate must be a non-negative number", ErrInvalidInput)
	}
	return nil
}
