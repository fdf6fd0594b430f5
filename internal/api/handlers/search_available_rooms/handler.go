package search_available_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelReservations/internal/api/handlers"
	searchAvailableRooms "github.com/m04kA/SMC-HotelReservations/internal/usecase/search_available_rooms"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgInvalidParams  = "некорректные параметры запроса, ожидаются checkIn и checkOut в формате YYYY-MM-DD"
	msgInvalidPeriod  = "дата выезда должна быть позже даты заезда"
	msgHotelNotFound  = "отель не найден"
	msgDateInPast     = "дата заезда в прошлом"
	msgStayTooLong    = "слишком длительное проживание"
)

type Handler struct {
	useCase SearchAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase SearchAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/available-rooms
// Query params: checkIn, checkOut (обязательные), guests (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/available-rooms - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(hotelID, query.Get("checkIn"), query.Get("checkOut"), query.Get("guests"))
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/available-rooms - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, searchAvailableRooms.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/{id}/available-rooms - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, searchAvailableRooms.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, searchAvailableRooms.ErrStayTooLong):
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, searchAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{id}/available-rooms - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /hotels/{id}/available-rooms - Failed to search rooms: hotel_id=%d, error=%v",
				hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/available-rooms - Search completed: hotel_id=%d, found=%d", hotelID, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
