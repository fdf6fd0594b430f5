package update_reservation_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelReservations/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservations/internal/service/reservations"
	"github.com/m04kA/SMC-HotelReservations/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStatus        = "некорректный статус бронирования"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
	msgInvalidTransition    = "недопустимая смена статуса"
	msgTooEarly             = "смена статуса недоступна до даты заезда"
	msgConflict             = "статус бронирования изменился, повторите запрос"
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

// Handle PATCH /api/v1/reservations/{reservationId}/status
// Доступно только менеджерам отеля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	err = h.service.UpdateStatus(r.Context(), reservationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/status - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/status - Access denied: reservation_id=%d, user_id=%d",
				reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid transition: reservation_id=%d, status=%s",
				reservationID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, reservations.ErrTooEarly):
			h.logger.Warn("PATCH /reservations/{id}/status - Too early: reservation_id=%d, status=%s",
				reservationID, req.Status)
			handlers.RespondConflict(w, msgTooEarly)

		case errors.Is(err, reservations.ErrStatusConflict):
			h.logger.Warn("PATCH /reservations/{id}/status - Concurrent status change: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /reservations/{id}/status - Failed to update status: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/status - Status updated successfully: reservation_id=%d, status=%s",
		reservationID, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
