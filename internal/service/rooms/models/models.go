package models

import (
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на создание номера
type CreateRoomRequest struct {
	UserID      int64   `json:"-"`
	HotelID     int64   `json:"-"`
	Number      string  `json:"number"`
	Type        string  `json:"type"`
	Capacity    int     `json:"capacity"`
	NightlyRate float64 `json:"nightlyRate"`
	Status      *string `json:"status,omitempty"` // по умолчанию available
	Floor       int     `json:"floor"`
}

// UpdateRoomRequest запрос на обновление номера
// Поля со значением nil не изменяются
type UpdateRoomRequest struct {
	UserID      int64    `json:"-"`
	HotelID     int64    `json:"-"`
	Number      *string  `json:"number,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	NightlyRate *float64 `json:"nightlyRate,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Floor       *int     `json:"floor,omitempty"`
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID          int64     `json:"id"`
	HotelID     int64     `json:"hotelId"`
	Number      string    `json:"number"`
	Type        string    `json:"type"`
	Capacity    int       `json:"capacity"`
	NightlyRate float64   `json:"nightlyRate"`
	Status      string    `json:"status"`
	Floor       int       `json:"floor"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:          r.ID,
		HotelID:     r.HotelID,
		Number:      r.Number,
		Type:        string(r.Type),
		Capacity:    r.Capacity,
		NightlyRate: r.NightlyRate,
		Status:      string(r.Status),
		Floor:       r.Floor,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}

	return resp
}
