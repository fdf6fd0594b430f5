package quote_block_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelReservations/internal/api/handlers"
	quoteBlockBooking "github.com/m04kA/SMC-HotelReservations/internal/usecase/quote_block_booking"
)

const (
	msgInvalidHotelID       = "некорректный ID отеля"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidData          = "некорректные данные запроса"
	msgHotelNotFound        = "отель не найден"
	msgRoomNotFound         = "номер не найден"
	msgRoomUnderMaintenance = "номер на обслуживании"
	msgDateInPast           = "дата заезда в прошлом"
	msgStayTooLong          = "слишком длительное проживание"
	msgTooManyRooms         = "слишком много номеров в групповой брони"
)

type Handler struct {
	useCase QuoteBlockBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBlockBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/hotels/{hotelId}/block-bookings/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("POST /hotels/{id}/block-bookings/quote - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hotels/{id}/block-bookings/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(hotelID)
	if err != nil {
		h.logger.Warn("POST /hotels/{id}/block-bookings/quote - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteBlockBooking.ErrHotelNotFound):
			h.logger.Warn("POST /hotels/{id}/block-bookings/quote - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, quoteBlockBooking.ErrRoomNotFound):
			h.logger.Warn("POST /hotels/{id}/block-bookings/quote - Room not found: %v", err)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, quoteBlockBooking.ErrRoomUnderMaintenance):
			handlers.RespondConflict(w, msgRoomUnderMaintenance)

		case errors.Is(err, quoteBlockBooking.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, quoteBlockBooking.ErrStayTooLong):
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, quoteBlockBooking.ErrTooManyRooms):
			handlers.RespondBadRequest(w, msgTooManyRooms)

		case errors.Is(err, quoteBlockBooking.ErrInvalidInput):
			h.logger.Warn("POST /hotels/{id}/block-bookings/quote - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /hotels/{id}/block-bookings/quote - Failed to quote: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hotels/{id}/block-bookings/quote - Quote calculated: hotel_id=%d, rooms=%d, eligible=%t",
		hotelID, result.RoomCount, result.IsEligible)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
