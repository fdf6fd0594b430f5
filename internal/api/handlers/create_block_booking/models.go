package create_block_booking

import (
	"time"

	createBlockBooking "github.com/m04kA/SMC-HotelReservations/internal/usecase/create_block_booking"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// CreateBlockBookingRequest HTTP request model
type CreateBlockBookingRequest struct {
	RoomIDs       []int64 `json:"roomIds"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	GuestsPerRoom int     `json:"guestsPerRoom,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// BlockBookingResponse HTTP response model
type BlockBookingResponse struct {
	ID                 int64          `json:"id"`
	ConfirmationCode   string         `json:"confirmationCode"`
	HotelID            int64          `json:"hotelId"`
	AgencyUserID       int64          `json:"agencyUserId"`
	CheckIn            string         `json:"checkIn"`
	CheckOut           string         `json:"checkOut"`
	Nights             int            `json:"nights"`
	RoomCount          int            `json:"roomCount"`
	Subtotal           float64        `json:"subtotal"`
	IsEligible         bool           `json:"isEligible"`
	DiscountPercentage float64        `json:"discountPercentage"`
	DiscountAmount     float64        `json:"discountAmount"`
	FinalAmount        float64        `json:"finalAmount"`
	Reservations       []ReservedRoom `json:"reservations"`
	CreatedAt          string         `json:"createdAt"`
}

// ReservedRoom бронирование номера в составе групповой брони
type ReservedRoom struct {
	ReservationID    int64   `json:"reservationId"`
	ConfirmationCode string  `json:"confirmationCode"`
	RoomID           int64   `json:"roomId"`
	RoomNumber       string  `json:"roomNumber"`
	TotalAmount      float64 `json:"totalAmount"`
	DiscountAmount   float64 `json:"discountAmount"`
	FinalAmount      float64 `json:"finalAmount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBlockBookingRequest) ToUseCaseRequest(agencyUserID, hotelID int64) (*createBlockBooking.Request, error) {
	checkIn, err := types.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := types.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBlockBooking.Request{
		AgencyUserID:  agencyUserID,
		HotelID:       hotelID,
		RoomIDs:       r.RoomIDs,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		GuestsPerRoom: r.GuestsPerRoom,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBlockBooking.Response) *BlockBookingResponse {
	reserved := make([]ReservedRoom, len(resp.Reservations))
	for i, r := range resp.Reservations {
		reserved[i] = ReservedRoom{
			ReservationID:    r.ReservationID,
			ConfirmationCode: r.ConfirmationCode,
			RoomID:           r.RoomID,
			RoomNumber:       r.RoomNumber,
			TotalAmount:      r.TotalAmount,
			DiscountAmount:   r.DiscountAmount,
			FinalAmount:      r.FinalAmount,
		}
	}

	return &BlockBookingResponse{
		ID:                 resp.BlockBookingID,
		ConfirmationCode:   resp.ConfirmationCode,
		HotelID:            resp.HotelID,
		AgencyUserID:       resp.AgencyUserID,
		CheckIn:            resp.CheckIn.String(),
		CheckOut:           resp.CheckOut.String(),
		Nights:             resp.Nights,
		RoomCount:          resp.RoomCount,
		Subtotal:           resp.Subtotal,
		IsEligible:         resp.IsEligible,
		DiscountPercentage: resp.DiscountPercentage,
		DiscountAmount:     resp.DiscountAmount,
		FinalAmount:        resp.FinalAmount,
		Reservations:       reserved,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
	}
}
