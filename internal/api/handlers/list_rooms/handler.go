package list_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelReservations/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservations/internal/service/rooms"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgHotelNotFound  = "отель не найден"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/rooms
// Полный список номеров со статусами доступен только менеджерам отеля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/rooms - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /hotels/{id}/rooms - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListByHotel(r.Context(), hotelID, userID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/{id}/rooms - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("GET /hotels/{id}/rooms - Access denied: hotel_id=%d, user_id=%d", hotelID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /hotels/{id}/rooms - Failed to list rooms: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/rooms - Rooms retrieved successfully: hotel_id=%d, count=%d", hotelID, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result.Rooms)
}
