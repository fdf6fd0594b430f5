package quote_block_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/availability"
	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// validateRequest валидирует входные данные запроса и возвращает интервал проживания
func validateRequest(req *Request, maxRooms int) (availability.Interval, error) {
	if req.HotelID <= 0 {
		return availability.Interval{}, fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	if len(req.RoomIDs) == 0 {
		return availability.Interval{}, fmt.Errorf("%w: at least one room is required", ErrInvalidInput)
	}

	if len(req.RoomIDs) > maxRooms {
		return availability.Interval{}, fmt.Errorf("%w: at most %d rooms per block", ErrTooManyRooms, maxRooms)
	}

	seen := make(map[int64]struct{}, len(req.RoomIDs))
	for _, id := range req.RoomIDs {
		if id <= 0 {
			return availability.Interval{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return availability.Interval{}, fmt.Errorf("%w: room %d is listed twice", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	interval, err := availability.NewInterval(req.CheckIn, req.CheckOut)
	if err != nil {
		return availability.Interval{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return interval, nil
}

// validateStay проверяет период относительно текущей даты
func validateStay(interval availability.Interval, now time.Time) error {
	if interval.CheckIn.Before(types.DateOf(now)) {
		return ErrDateInPast
	}

	if interval.Nights() > domain.MaxStayNights {
		return fmt.Errorf("%w: maximum is %d nights", ErrStayTooLong, domain.MaxStayNights)
	}

	return nil
}

// orderRooms возвращает номера в порядке запроса и проверяет, что все они найдены и в работе
func orderRooms(ids []int64, rooms []*domain.Room) ([]*domain.Room, error) {
	byID := make(map[int64]*domain.Room, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}

	ordered := make([]*domain.Room, 0, len(ids))
	for _, id := range ids {
		room, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", ErrRoomNotFound, id)
		}
		if room.IsUnderMaintenance() {
			return nil, fmt.Errorf("%w: room %s", ErrRoomUnderMaintenance, room.Number)
		}
		ordered = append(ordered, room)
	}

	return ordered, nil
}
