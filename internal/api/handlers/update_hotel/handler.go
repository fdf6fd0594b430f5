package update_hotel

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelReservations/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservations/internal/service/hotels"
	"github.com/m04kA/SMC-HotelReservations/internal/service/hotels/models"
)

const (
	msgInvalidHotelID     = "некорректный ID отеля"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные отеля"
	msgNotFound           = "отель не найден"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service HotelService
	logger  Logger
}

func NewHandler(service HotelService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/hotels/{hotelId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("PUT /hotels/{id} - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /hotels/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateHotelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /hotels/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	// Сервис сам проверит права менеджера
	result, err := h.service.Update(r.Context(), hotelID, &req)
	if err != nil {
		switch {
		case errors.Is(err, hotels.ErrHotelNotFound):
			h.logger.Warn("PUT /hotels/{id} - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, hotels.ErrAccessDenied):
			h.logger.Warn("PUT /hotels/{id} - Access denied: hotel_id=%d, user_id=%d", hotelID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, hotels.ErrInvalidInput):
			h.logger.Warn("PUT /hotels/{id} - Invalid hotel data: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /hotels/{id} - Failed to update hotel: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /hotels/{id} - Hotel updated successfully: hotel_id=%d, user_id=%d", hotelID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
