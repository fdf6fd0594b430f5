package availability

import (
	"fmt"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// Interval is a half-open stay [CheckIn, CheckOut) measured in whole days.
// The check-out day itself is free for a new arrival.
type Interval struct {
	CheckIn  types.Date
	CheckOut types.Date
}

// NewInterval builds a validated interval
func NewInterval(checkIn, checkOut types.Date) (Interval, error) {
	i := Interval{CheckIn: checkIn, CheckOut: checkOut}
	if err := i.Validate(); err != nil {
		return Interval{}, err
	}
	return i, nil
}

// Validate checks that both ends are set and CheckIn < CheckOut
func (i Interval) Validate() error {
	if i.CheckIn.IsZero() || i.CheckOut.IsZero() {
		return fmt.Errorf("%w: both dates are required", ErrInvalidInterval)
	}
	if !i.CheckIn.Before(i.CheckOut) {
		return fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval, i.CheckIn, i.CheckOut)
	}
	return nil
}

// Nights returns the number of nights covered by the interval
func (i Interval) Nights() int {
	return i.CheckIn.DaysUntil(i.CheckOut)
}

// Contains reports whether the night starting on d belongs to the interval
func (i Interval) Contains(d types.Date) bool {
	return !d.Before(i.CheckIn) && d.Before(i.CheckOut)
}

// String formats the interval as [checkIn, checkOut)
func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.CheckIn, i.CheckOut)
}

// ReservationInterval is one existing booking's occupancy of a room
type ReservationInterval struct {
	ReservationID int64
	RoomID        int64
	Interval
	Status domain.ReservationStatus
}

// FromReservation extracts the occupancy of a stored reservation
func FromReservation(r *domain.Reservation) ReservationInterval {
	return ReservationInterval{
		ReservationID: r.ID,
		RoomID:        r.RoomID,
		Interval:      Interval{CheckIn: r.CheckIn, CheckOut: r.CheckOut},
		Status:        r.Status,
	}
}

// GroupByRoom converts reservations into occupancy intervals keyed by room id
func GroupByRoom(reservations []*domain.Reservation) map[int64][]ReservationInterval {
	byRoom := make(map[int64][]ReservationInterval)
	for _, r := range reservations {
		byRoom[r.RoomID] = append(byRoom[r.RoomID], FromReservation(r))
	}
	return byRoom
}
