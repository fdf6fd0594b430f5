package availability

import (
	"fmt"
	"iter"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
)

// IsOverlapping reports whether two half-open intervals share at least one night:
// candidate.CheckIn < existing.CheckOut && candidate.CheckOut > existing.CheckIn.
// Back-to-back stays (one checks out the day the other checks in) do not overlap.
func IsOverlapping(candidate, existing Interval) (bool, error) {
	if err := candidate.Validate(); err != nil {
		return false, fmt.Errorf("candidate: %w", err)
	}
	if err := existing.Validate(); err != nil {
		return false, fmt.Errorf("existing: %w", err)
	}

	return candidate.CheckIn.Before(existing.CheckOut) && candidate.CheckOut.After(existing.CheckIn), nil
}

// IsRoomAvailable reports whether roomID is free for candidate.
//
// Records for other rooms are ignored and cancelled reservations never block.
// Any other record (no-show included) blocks when it overlaps. A malformed
// candidate or blocking record aborts the check with ErrInvalidInterval.
func IsRoomAvailable(roomID int64, candidate Interval, reservations []ReservationInterval) (bool, error) {
	if err := candidate.Validate(); err != nil {
		return false, fmt.Errorf("candidate: %w", err)
	}

	available := true
	for _, r := range reservations {
		if r.RoomID != roomID || !r.Status.BlocksAvailability() {
			continue
		}

		overlapping, err := IsOverlapping(candidate, r.Interval)
		if err != nil {
			return false, fmt.Errorf("room %d, reservation %d: %w", roomID, r.ReservationID, err)
		}
		if overlapping {
			// Продолжаем проход, чтобы битые записи не остались незамеченными
			available = false
		}
	}

	return available, nil
}

// FilterAvailableRooms lazily yields the rooms that are free for candidate, in input order.
//
// Rooms under maintenance are skipped regardless of reservations. The sequence is a
// pure function of its inputs, so it can be ranged over any number of times.
// On the first error the sequence yields (room, err) and stops; room is nil when
// the candidate itself is invalid.
func FilterAvailableRooms(
	rooms []*domain.Room,
	candidate Interval,
	reservationsByRoom map[int64][]ReservationInterval,
) iter.Seq2[*domain.Room, error] {
	return func(yield func(*domain.Room, error) bool) {
		if err := candidate.Validate(); err != nil {
			yield(nil, fmt.Errorf("candidate: %w", err))
			return
		}

		for _, room := range rooms {
			if room.IsUnderMaintenance() {
				continue
			}

			available, err := IsRoomAvailable(room.ID, candidate, reservationsByRoom[room.ID])
			if err != nil {
				yield(room, err)
				return
			}
			if !available {
				continue
			}

			if !yield(room, nil) {
				return
			}
		}
	}
}

// CollectAvailableRooms drains FilterAvailableRooms into a slice
func CollectAvailableRooms(
	rooms []*domain.Room,
	candidate Interval,
	reservationsByRoom map[int64][]ReservationInterval,
) ([]*domain.Room, error) {
	result := make([]*domain.Room, 0, len(rooms))
	for room, err := range FilterAvailableRooms(rooms, candidate, reservationsByRoom) {
		if err != nil {
			return nil, err
		}
		result = append(result, room)
	}
	return result, nil
}
