package create_block_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelReservations/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	createBlockBooking "github.com/m04kA/SMC-HotelReservations/internal/usecase/create_block_booking"
)

const (
	msgInvalidHotelID       = "некорректный ID отеля"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidData          = "некорректные данные групповой брони"
	msgHotelNotFound        = "отель не найден"
	msgRoomNotFound         = "номер не найден"
	msgRoomUnderMaintenance = "номер на обслуживании"
	msgCapacityExceeded     = "номер не вмещает указанное число гостей"
	msgRoomNotAvailable     = "часть номеров занята на выбранные даты"
	msgDateInPast           = "дата заезда в прошлом"
	msgStayTooLong          = "слишком длительное проживание"
	msgTooManyRooms         = "слишком много номеров в групповой брони"
)

type Handler struct {
	useCase CreateBlockBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBlockBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/hotels/{hotelId}/block-bookings
// Пользователь из X-User-ID выступает агентством
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("POST /hotels/{id}/block-bookings - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	agencyID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /hotels/{id}/block-bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBlockBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hotels/{id}/block-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(agencyID, hotelID)
	if err != nil {
		h.logger.Warn("POST /hotels/{id}/block-bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBlockBooking.ErrRoomNotAvailable):
			h.logger.Warn("POST /hotels/{id}/block-bookings - Rooms not available: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, createBlockBooking.ErrHotelNotFound):
			h.logger.Warn("POST /hotels/{id}/block-bookings - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, createBlockBooking.ErrRoomNotFound):
			h.logger.Warn("POST /hotels/{id}/block-bookings - Room not found: %v", err)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBlockBooking.ErrRoomUnderMaintenance):
			handlers.RespondConflict(w, msgRoomUnderMaintenance)

		case errors.Is(err, createBlockBooking.ErrCapacityExceeded):
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBlockBooking.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBlockBooking.ErrStayTooLong):
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, createBlockBooking.ErrTooManyRooms):
			handlers.RespondBadRequest(w, msgTooManyRooms)

		case errors.Is(err, createBlockBooking.ErrInvalidInput):
			h.logger.Warn("POST /hotels/{id}/block-bookings - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /hotels/{id}/block-bookings - Failed to create block booking: hotel_id=%d, agency_id=%d, error=%v",
				hotelID, agencyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hotels/{id}/block-bookings - Block booking created: block_id=%d, hotel_id=%d, rooms=%d",
		result.BlockBookingID, hotelID, result.RoomCount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
