package create_hotel

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelReservations/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservations/internal/service/hotels"
	"github.com/m04kA/SMC-HotelReservations/internal/service/hotels/models"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные отеля"
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

// Handle POST /api/v1/hotels
// Создатель отеля становится его менеджером
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /hotels - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateHotelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hotels - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, hotels.ErrInvalidInput) {
			h.logger.Warn("POST /hotels - Invalid hotel data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("POST /hotels - Failed to create hotel: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /hotels - Hotel created successfully: hotel_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
