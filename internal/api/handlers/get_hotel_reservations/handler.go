package get_hotel_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelReservations/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservations/internal/service/reservations"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidParams  = "некорректные параметры запроса"
	msgHotelNotFound  = "отель не найден"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/reservations
// Query params: from, to, status, includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/reservations - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /hotels/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(hotelID, userID,
		query.Get("from"), query.Get("to"), query.Get("status"), query.Get("includeCancelled"))
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Сервис сам проверит права менеджера
	result, err := h.service.GetHotelReservations(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/{id}/reservations - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /hotels/{id}/reservations - Access denied: hotel_id=%d, user_id=%d", hotelID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{id}/reservations - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /hotels/{id}/reservations - Failed to get reservations: hotel_id=%d, error=%v",
				hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/reservations - Reservations retrieved successfully: hotel_id=%d, count=%d",
		hotelID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result.Reservations)
}
