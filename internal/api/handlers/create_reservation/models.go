package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/SMC-HotelReservations/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	HotelID  int64   `json:"hotelId"`
	RoomID   int64   `json:"roomId"`
	CheckIn  string  `json:"checkIn"`  // "2025-10-15"
	CheckOut string  `json:"checkOut"` // "2025-10-18"
	Guests   int     `json:"guests"`
	Notes    *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID               int64   `json:"id"`
	ConfirmationCode string  `json:"confirmationCode"`
	HotelID          int64   `json:"hotelId"`
	RoomID           int64   `json:"roomId"`
	GuestUserID      int64   `json:"guestUserId"`
	CheckIn          string  `json:"checkIn"`
	CheckOut         string  `json:"checkOut"`
	Nights           int     `json:"nights"`
	Guests           int     `json:"guests"`
	Status           string  `json:"status"`
	RoomNumber       string  `json:"roomNumber"`
	NightlyRate      float64 `json:"nightlyRate"`
	TotalAmount      float64 `json:"totalAmount"`
	DiscountAmount   float64 `json:"discountAmount"`
	FinalAmount      float64 `json:"finalAmount"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	checkIn, err := types.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := types.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:   userID,
		HotelID:  r.HotelID,
		RoomID:   r.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   r.Guests,
		Notes:    r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:               resp.ID,
		ConfirmationCode: resp.ConfirmationCode,
		HotelID:          resp.HotelID,
		RoomID:           resp.RoomID,
		GuestUserID:      resp.GuestUserID,
		CheckIn:          resp.CheckIn.String(),
		CheckOut:         resp.CheckOut.String(),
		Nights:           resp.Nights,
		Guests:           resp.Guests,
		Status:           resp.Status,
		RoomNumber:       resp.RoomNumber,
		NightlyRate:      resp.NightlyRate,
		TotalAmount:      resp.TotalAmount,
		DiscountAmount:   resp.DiscountAmount,
		FinalAmount:      resp.FinalAmount,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
