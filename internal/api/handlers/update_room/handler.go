package update_room

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
	msgInvalidRoomID      = "некорректный ID номера"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные номера"
	msgHotelNotFound      = "отель не найден"
	msgRoomNotFound       = "номер не найден"
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

// Handle PUT /api/v1/hotels/{hotelId}/rooms/{roomId}
// Через этот же эндпоинт номер выводится на обслуживание (status=maintenance) и возвращается в работу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("PUT /hotels/{id}/rooms/{roomId} - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("PUT /hotels/{id}/rooms/{roomId} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /hotels/{id}/rooms/{roomId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /hotels/{id}/rooms/{roomId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.HotelID = hotelID

	result, err := h.service.Update(r.Context(), roomID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrHotelNotFound):
			h.logger.Warn("PUT /hotels/{id}/rooms/{roomId} - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("PUT /hotels/{id}/rooms/{roomId} - Room not found: hotel_id=%d, room_id=%d", hotelID, roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("PUT /hotels/{id}/rooms/{roomId} - Access denied: hotel_id=%d, user_id=%d", hotelID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rooms.ErrDuplicateRoomNumber):
			h.logger.Warn("PUT /hotels/{id}/rooms/{roomId} - Duplicate room number: hotel_id=%d", hotelID)
			handlers.RespondConflict(w, msgDuplicateNumber)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("PUT /hotels/{id}/rooms/{roomId} - Invalid room data: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /hotels/{id}/rooms/{roomId} - Failed to update room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /hotels/{id}/rooms/{roomId} - Room updated successfully: room_id=%d, status=%s", roomID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
