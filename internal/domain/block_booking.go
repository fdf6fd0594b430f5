package domain

import (
	"time"

	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// BlockBooking represents a multi-room booking made by a travel agency in one transaction
type BlockBooking struct {
	ID                 int64
	ConfirmationCode   string
	HotelID            int64
	AgencyUserID       int64
	RoomCount          int
	CheckIn            types.Date
	CheckOut           types.Date
	Subtotal           float64
	IsEligible         bool
	DiscountPercentage float64
	DiscountAmount     float64
	FinalAmount        float64
	CreatedAt          time.Time
}
