package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelReservations/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservations/internal/service/rooms"
	"github.com/m04kA/SMC-HotelReservations/internal/service/rooms/models"
)

const (
	msgInvalidHotelID     = "некорректный ID отеля"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные номера"
	msgHotelNotFound      = "отель не найден"
	msgForbidden          = "доступ запрещен"
	msgDuplicateNumber    = "номер с таким обозначением уже существует"
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

// Handle POST /api/v1/hotels/{hotelId}/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("POST /hotels/{id}/rooms - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /hotels/{id}/rooms - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hotels/{id}/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.HotelID = hotelID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrHotelNotFound):
			h.logger.Warn("POST /hotels/{id}/rooms - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("POST /hotels/{id}/rooms - Access denied: hotel_id=%d, user_id=%d", hotelID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rooms.ErrDuplicateRoomNumber):
			h.logger.Warn("POST /hotels/{id}/rooms - Duplicate room number: hotel_id=%d, number=%s", hotelID, req.Number)
			handlers.RespondConflict(w, msgDuplicateNumber)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /hotels/{id}/rooms - Invalid room data: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /hotels/{id}/rooms - Failed to create room: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hotels/{id}/rooms - Room created successfully: room_id=%d, hotel_id=%d", result.ID, hotelID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
