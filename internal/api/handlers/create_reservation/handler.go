package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelReservations/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-HotelReservations/internal/usecase/create_reservation"
)

const (
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidData          = "некорректные данные бронирования"
	msgHotelNotFound        = "отель не найден"
	msgRoomNotFound         = "номер не найден"
	msgRoomUnderMaintenance = "номер на обслуживании"
	msgCapacityExceeded     = "номер не вмещает указанное число гостей"
	msgDateInPast           = "дата заезда в прошлом"
	msgStayTooLong          = "слишком длительное проживание"
	msgRoomNotAvailable     = "номер занят на выбранные даты"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrRoomNotAvailable):
			h.logger.Warn("POST /reservations - Room not available: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, createReservation.ErrHotelNotFound):
			h.logger.Warn("POST /reservations - Hotel not found: hotel_id=%d", req.HotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: hotel_id=%d, room_id=%d", req.HotelID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrRoomUnderMaintenance):
			h.logger.Warn("POST /reservations - Room under maintenance: room_id=%d", req.RoomID)
			handlers.RespondConflict(w, msgRoomUnderMaintenance)

		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: room_id=%d, guests=%d", req.RoomID, req.Guests)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createReservation.ErrDateInPast):
			h.logger.Warn("POST /reservations - Check-in in the past: user_id=%d, check_in=%s", userID, req.CheckIn)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrStayTooLong):
			h.logger.Warn("POST /reservations - Stay too long: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, room_id=%d, error=%v",
				userID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, room_id=%d",
		result.ID, userID, result.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
