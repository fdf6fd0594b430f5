package list_hotels

import (
	"net/http"

	"github.com/m04kA/SMC-HotelReservations/internal/api/handlers"
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

// Handle GET /api/v1/hotels
// Query params: city (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var city *string
	if c := r.URL.Query().Get("city"); c != "" {
		city = &c
	}

	result, err := h.service.List(r.Context(), city)
	if err != nil {
		h.logger.Error("GET /hotels - Failed to list hotels: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hotels - Hotels retrieved successfully: count=%d", len(result.Hotels))
	handlers.RespondJSON(w, http.StatusOK, result.Hotels)
}
