package generate_report

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelReservations/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	generateReport "github.com/m04kA/SMC-HotelReservations/internal/usecase/generate_report"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidParams  = "некорректные параметры отчета"
	msgUnknownKind    = "неизвестный тип отчета"
	msgHotelNotFound  = "отель не найден"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	useCase GenerateReportUseCase
	logger  Logger
}

func NewHandler(useCase GenerateReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/reports/{kind}
// Query params: from, to (кроме forecast), days (только forecast), format=json|pdf
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/reports/{kind} - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /hotels/{id}/reports/{kind} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	kind := mux.Vars(r)["kind"]
	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(userID, hotelID, kind,
		query.Get("from"), query.Get("to"), query.Get("days"), query.Get("format"))
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/reports/{kind} - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateReport.ErrUnknownKind):
			h.logger.Warn("GET /hotels/{id}/reports/{kind} - Unknown kind: %s", kind)
			handlers.RespondNotFound(w, msgUnknownKind)

		case errors.Is(err, generateReport.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/{id}/reports/{kind} - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, generateReport.ErrAccessDenied):
			h.logger.Warn("GET /hotels/{id}/reports/{kind} - Access denied: hotel_id=%d, user_id=%d", hotelID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, generateReport.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{id}/reports/{kind} - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /hotels/{id}/reports/{kind} - Failed to build report: hotel_id=%d, kind=%s, error=%v",
				hotelID, kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/reports/{kind} - Report built: hotel_id=%d, kind=%s, format=%s",
		hotelID, kind, result.Format)

	if result.Format == generateReport.FormatPDF {
		handlers.RespondPDF(w, result.Filename, result.PDF)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
