package create_block_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// Request модель запроса на создание групповой брони агентства
type Request struct {
	AgencyUserID  int64      // ID пользователя агентства
	HotelID       int64      // ID отеля
	RoomIDs       []int64    // Номера для бронирования
	CheckIn       types.Date // Дата заезда (включительно)
	CheckOut      types.Date // Дата выезда (не включается)
	GuestsPerRoom int        // Гостей в каждом номере (0 = 1)
	Notes         *string    // Заметки, копируются в каждое бронирование
}

// Response модель ответа с созданной групповой бронью
type Response struct {
	BlockBookingID   int64
	ConfirmationCode string
	HotelID          int64
	AgencyUserID     int64
	CheckIn          types.Date
	CheckOut         types.Date
	Nights           int

	RoomCount          int
	Subtotal           float64
	IsEligible         bool
	DiscountPercentage float64
	DiscountAmount     float64
	FinalAmount        float64

	Reservations []ReservedRoom
	CreatedAt    time.Time
}

// ReservedRoom бронирование одного номера в составе групповой брони
type ReservedRoom struct {
	ReservationID    int64
	ConfirmationCode string
	RoomID           int64
	RoomNumber       string
	TotalAmount      float64
	DiscountAmount   float64
	FinalAmount      float64
}
