package domain

import (
	"errors"
	"time"
)

// RoomStatus represents the housekeeping status of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// RoomType represents the category of a room
type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeSuite  RoomType = "suite"
	RoomTypeFamily RoomType = "family"
)

var (
	// ErrUnknownRoomStatus is returned for an unrecognised room status
	ErrUnknownRoomStatus = errors.New("domain: unknown room status")

	// ErrUnknownRoomType is returned for an unrecognised room type
	ErrUnknownRoomType = errors.New("domain: unknown room type")
)

// ParseRoomStatus converts a raw string into a RoomStatus
func ParseRoomStatus(s string) (RoomStatus, error) {
	switch status := RoomStatus(s); status {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return status, nil
	}
	return "", ErrUnknownRoomStatus
}

// ParseRoomType converts a raw string into a RoomType
func ParseRoomType(s string) (RoomType, error) {
	switch roomType := RoomType(s); roomType {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeFamily:
		return roomType, nil
	}
	return "", ErrUnknownRoomType
}

// Room represents a bookable hotel room
type Room struct {
	ID          int64
	HotelID     int64
	Number      string
	Type        RoomType
	Capacity    int
	NightlyRate float64
	Status      RoomStatus
	Floor       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsUnderMaintenance returns true if the room is out of service
func (r *Room) IsUnderMaintenance() bool {
	return r.Status == RoomStatusMaintenance
}

// CanHost returns true if the room fits the given number of guests
func (r *Room) CanHost(guests int) bool {
	return guests <= r.Capacity
}

// StayPrice returns the undiscounted price for the given number of nights
func (r *Room) StayPrice(nights int) float64 {
	return r.NightlyRate * float64(nights)
}
