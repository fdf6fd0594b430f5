package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/availability"
	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// validateRequest валидирует входные данные запроса и возвращает интервал проживания
func validateRequest(req *Request) (availability.Interval, error) {
	if req.UserID <= 0 {
		return availability.Interval{}, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.HotelID <= 0 {
		return availability.Interval{}, fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return availability.Interval{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Guests < 1 || req.Guests > domain.MaxGuestsPerRoom {
		return availability.Interval{}, fmt.Errorf("%w: guests must be between 1 and %d", ErrInvalidInput, domain.MaxGuestsPerRoom)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return availability.Interval{}, fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
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

// validateRoom проверяет, что номер принадлежит отелю и может принять гостей
func validateRoom(room *domain.Room, hotelID int64, guests int) error {
	if room.HotelID != hotelID {
		return ErrRoomNotFound
	}

	if room.IsUnderMaintenance() {
		return ErrRoomUnderMaintenance
	}

	if !room.CanHost(guests) {
		return fmt.Errorf("%w: room %s fits %d guests", ErrCapacityExceeded, room.Number, room.Capacity)
	}

	return nil
}
