package models

import (
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/internal/pricing"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID             int64  `json:"-"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"-"`
	Status string `json:"status"`
}

// GetGuestReservationsRequest запрос на получение бронирований гостя
type GetGuestReservationsRequest struct {
	UserID int64
	Status *string
}

// GetHotelReservationsRequest запрос на получение бронирований отеля
type GetHotelReservationsRequest struct {
	UserID           int64
	HotelID          int64
	From             *types.Date // Бронирования, пересекающиеся с [From, To)
	To               *types.Date
	Status           *string
	IncludeCancelled bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetHotelReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		HotelID:          r.HotelID,
		From:             r.From,
		To:               r.To,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := domain.ParseReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID               int64  `json:"id"`
	ConfirmationCode string `json:"confirmationCode"`
	HotelID          int64  `json:"hotelId"`
	RoomID           int64  `json:"roomId"`
	GuestUserID      int64  `json:"guestUserId"`
	AgencyUserID     *int64 `json:"agencyUserId,omitempty"`
	BlockBookingID   *int64 `json:"blockBookingId,omitempty"`
	CheckIn          string `json:"checkIn"`  // "2025-10-15"
	CheckOut         string `json:"checkOut"` // "2025-10-18", день выезда не входит в проживание
	Nights           int    `json:"nights"`
	Guests           int    `json:"guests"`
	Status           string `json:"status"`

	// Денормализованные данные
	RoomNumber     string  `json:"roomNumber"`
	NightlyRate    float64 `json:"nightlyRate"`
	TotalAmount    float64 `json:"totalAmount"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalAmount    float64 `json:"finalAmount"`
	Notes          *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		ConfirmationCode:   r.ConfirmationCode,
		HotelID:            r.HotelID,
		RoomID:             r.RoomID,
		GuestUserID:        r.GuestUserID,
		AgencyUserID:       r.AgencyUserID,
		BlockBookingID:     r.BlockBookingID,
		CheckIn:            r.CheckIn.String(),
		CheckOut:           r.CheckOut.String(),
		Nights:             r.Nights(),
		Guests:             r.Guests,
		Status:             string(r.Status),
		RoomNumber:         r.RoomNumber,
		NightlyRate:        r.NightlyRate,
		TotalAmount:        r.TotalAmount,
		DiscountAmount:     r.DiscountAmount,
		FinalAmount:        pricing.Round2(r.FinalAmount()),
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, reservation := range reservations {
		if reservationResp := FromDomainReservation(reservation); reservationResp != nil {
			resp.Reservations = append(resp.Reservations, *reservationResp)
		}
	}

	return resp
}
