package search_available_rooms

import (
	"strconv"

	searchAvailableRooms "github.com/m04kA/SMC-HotelReservations/internal/usecase/search_available_rooms"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	HotelID  int64           `json:"hotelId"`
	CheckIn  string          `json:"checkIn"`
	CheckOut string          `json:"checkOut"`
	Nights   int             `json:"nights"`
	Rooms    []AvailableRoom `json:"rooms"`
}

// AvailableRoom свободный номер
type AvailableRoom struct {
	RoomID      int64   `json:"roomId"`
	Number      string  `json:"number"`
	Type        string  `json:"type"`
	Capacity    int     `json:"capacity"`
	Floor       int     `json:"floor"`
	NightlyRate float64 `json:"nightlyRate"`
	StayPrice   float64 `json:"stayPrice"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(hotelID int64, checkInStr, checkOutStr, guestsStr string) (*searchAvailableRooms.Request, error) {
	checkIn, err := types.ParseDate(checkInStr)
	if err != nil {
		return nil, err
	}

	checkOut, err := types.ParseDate(checkOutStr)
	if err != nil {
		return nil, err
	}

	req := &searchAvailableRooms.Request{
		HotelID:  hotelID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}

	if guestsStr != "" {
		guests, err := strconv.Atoi(guestsStr)
		if err != nil {
			return nil, err
		}
		req.Guests = &guests
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchAvailableRooms.Response) *AvailableRoomsResponse {
	rooms := make([]AvailableRoom, len(resp.Rooms))
	for i, room := range resp.Rooms {
		rooms[i] = AvailableRoom{
			RoomID:      room.RoomID,
			Number:      room.Number,
			Type:        room.Type,
			Capacity:    room.Capacity,
			Floor:       room.Floor,
			NightlyRate: room.NightlyRate,
			StayPrice:   room.StayPrice,
		}
	}

	return &AvailableRoomsResponse{
		HotelID:  resp.HotelID,
		CheckIn:  resp.CheckIn.String(),
		CheckOut: resp.CheckOut.String(),
		Nights:   resp.Nights,
		Rooms:    rooms,
	}
}
