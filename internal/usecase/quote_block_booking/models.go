package quote_block_booking

import "github.com/m04kA/SMC-HotelReservations/pkg/types"

// Request модель запроса на расчет групповой брони
type Request struct {
	HotelID  int64      // ID отеля
	RoomIDs  []int64    // Номера, которые агентство хочет забронировать
	CheckIn  types.Date // Дата заезда (включительно)
	CheckOut types.Date // Дата выезда (не включается)
}

// Response модель ответа с расчетом стоимости
type Response struct {
	HotelID  int64
	CheckIn  types.Date
	CheckOut types.Date
	Nights   int

	RoomCount          int
	MinimumRooms       int
	Subtotal           float64
	IsEligible         bool
	DiscountPercentage float64
	DiscountAmount     float64
	FinalAmount        float64
	Savings            float64

	Rooms        []QuoteLine
	AllAvailable bool // Все номера свободны на период
}

// QuoteLine стоимость одного номера в групповой брони
type QuoteLine struct {
	RoomID         int64
	Number         string
	NightlyRate    float64
	Subtotal       float64
	DiscountAmount float64
	FinalAmount    float64
	Available      bool
}
