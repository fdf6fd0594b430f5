package search_available_rooms

import "github.com/m04kA/SMC-HotelReservations/pkg/types"

// Request модель запроса на поиск свободных номеров
type Request struct {
	HotelID  int64      // ID отеля
	CheckIn  types.Date // Дата заезда (включительно)
	CheckOut types.Date // Дата выезда (не включается)
	Guests   *int       // Минимальная вместимость номера (опционально)
}

// Response модель ответа со списком свободных номеров
type Response struct {
	HotelID  int64
	CheckIn  types.Date
	CheckOut types.Date
	Nights   int
	Rooms    []AvailableRoom
}

// AvailableRoom свободный номер с ценой за весь период
type AvailableRoom struct {
	RoomID      int64
	Number      string
	Type        string
	Capacity    int
	Floor       int
	NightlyRate float64
	StayPrice   float64 // NightlyRate × Nights, округлено до копеек
}
