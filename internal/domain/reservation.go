package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusReserved   ReservationStatus = "reserved"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusNoShow     ReservationStatus = "no_show"
)

// ErrUnknownReservationStatus is returned when a string is not one of the known statuses
var ErrUnknownReservationStatus = errors.New("domain: unknown reservation status")

// ParseReservationStatus converts a raw string into a known ReservationStatus
func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	if !status.IsValid() {
		return "", ErrUnknownReservationStatus
	}
	return status, nil
}

// IsValid returns true if the status is one of the known values
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusReserved, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// BlocksAvailability returns true if a reservation in this status occupies its room.
// A no-show still holds the room until it is explicitly cancelled.
// Unknown statuses block, so corrupted data never frees a room.
func (s ReservationStatus) BlocksAvailability() bool {
	switch s {
	case StatusCancelled:
		return false
	case StatusReserved, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusNoShow:
		return true
	default:
		return true
	}
}

// IsTerminal returns true if no further transitions are possible
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled || s == StatusNoShow
}

// CanTransitionTo reports whether the status may change to next
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	switch s {
	case StatusReserved:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCheckedIn || next == StatusCancelled || next == StatusNoShow
	case StatusCheckedIn:
		return next == StatusCheckedOut
	default:
		return false
	}
}

// Reservation represents one room booked for a stay
type Reservation struct {
	ID               int64
	ConfirmationCode string
	HotelID          int64
	RoomID           int64
	GuestUserID      int64
	AgencyUserID     *int64 // set for block bookings made by a travel agency
	BlockBookingID   *int64
	CheckIn          types.Date // inclusive
	CheckOut         types.Date // exclusive
	Guests           int
	Status           ReservationStatus

	// Denormalized pricing, fixed at booking time
	RoomNumber     string
	NightlyRate    float64
	TotalAmount    float64 // before discount
	DiscountAmount float64

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Nights returns the number of nights in the stay
func (r *Reservation) Nights() int {
	return r.CheckIn.DaysUntil(r.CheckOut)
}

// FinalAmount returns the amount charged after discount
func (r *Reservation) FinalAmount() float64 {
	return r.TotalAmount - r.DiscountAmount
}

// IsActive returns true if the reservation still holds its room
func (r *Reservation) IsActive() bool {
	return r.Status.BlocksAvailability()
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status.CanTransitionTo(StatusCancelled)
}

// IsBlockBooking returns true if the reservation belongs to a block booking
func (r *Reservation) IsBlockBooking() bool {
	return r.BlockBookingID != nil
}

// ReservationsFilter фильтр для выборки бронирований отеля
type ReservationsFilter struct {
	HotelID          int64              // Обязательный параметр
	RoomIDs          []int64            // Фильтр по номерам (опционально)
	From             *types.Date        // Начало периода, бронирования пересекающиеся с [From, To)
	To               *types.Date        // Конец периода (исключительно)
	Status           *ReservationStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отмененные бронирования
	ForUpdate        bool               // Блокировать строки (только внутри транзакции)
}
