package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID   int64      // ID гостя
	HotelID  int64      // ID отеля
	RoomID   int64      // ID номера
	CheckIn  types.Date // Дата заезда (включительно)
	CheckOut types.Date // Дата выезда (не включается)
	Guests   int        // Количество гостей
	Notes    *string    // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               int64
	ConfirmationCode string
	HotelID          int64
	RoomID           int64
	GuestUserID      int64
	CheckIn          types.Date
	CheckOut         types.Date
	Nights           int
	Guests           int
	Status           string

	// Денормализованные данные
	RoomNumber     string
	NightlyRate    float64
	TotalAmount    float64
	DiscountAmount float64
	FinalAmount    float64
	Notes          *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
