package quote_block_booking

import (
	quoteBlockBooking "github.com/m04kA/SMC-HotelReservations/internal/usecase/quote_block_booking"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	RoomIDs  []int64 `json:"roomIds"`
	CheckIn  string  `json:"checkIn"`
	CheckOut string  `json:"checkOut"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	HotelID            int64       `json:"hotelId"`
	CheckIn            string      `json:"checkIn"`
	CheckOut           string      `json:"checkOut"`
	Nights             int         `json:"nights"`
	RoomCount          int         `json:"roomCount"`
	MinimumRooms       int         `json:"minimumRooms"`
	Subtotal           float64     `json:"subtotal"`
	IsEligible         bool        `json:"isEligible"`
	DiscountPercentage float64     `json:"discountPercentage"`
	DiscountAmount     float64     `json:"discountAmount"`
	FinalAmount        float64     `json:"finalAmount"`
	Savings            float64     `json:"savings"`
	AllAvailable       bool        `json:"allAvailable"`
	Rooms              []QuoteLine `json:"rooms"`
}

// QuoteLine строка расчета по номеру
type QuoteLine struct {
	RoomID         int64   `json:"roomId"`
	Number         string  `json:"number"`
	NightlyRate    float64 `json:"nightlyRate"`
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalAmount    float64 `json:"finalAmount"`
	Available      bool    `json:"available"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest(hotelID int64) (*quoteBlockBooking.Request, error) {
	checkIn, err := types.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := types.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &quoteBlockBooking.Request{
		HotelID:  hotelID,
		RoomIDs:  r.RoomIDs,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBlockBooking.Response) *QuoteResponse {
	lines := make([]QuoteLine, len(resp.Rooms))
	for i, line := range resp.Rooms {
		lines[i] = QuoteLine{
			RoomID:         line.RoomID,
			Number:         line.Number,
			NightlyRate:    line.NightlyRate,
			Subtotal:       line.Subtotal,
			DiscountAmount: line.DiscountAmount,
			FinalAmount:    line.FinalAmount,
			Available:      line.Available,
		}
	}

	return &QuoteResponse{
		HotelID:            resp.HotelID,
		CheckIn:            resp.CheckIn.String(),
		CheckOut:           resp.CheckOut.String(),
		Nights:             resp.Nights,
		RoomCount:          resp.RoomCount,
		MinimumRooms:       resp.MinimumRooms,
		Subtotal:           resp.Subtotal,
		IsEligible:         resp.IsEligible,
		DiscountPercentage: resp.DiscountPercentage,
		DiscountAmount:     resp.DiscountAmount,
		FinalAmount:        resp.FinalAmount,
		Savings:            resp.Savings,
		AllAvailable:       resp.AllAvailable,
		Rooms:              lines,
	}
}
