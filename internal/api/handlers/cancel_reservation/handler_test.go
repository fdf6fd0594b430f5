package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservations/internal/service/reservations"
	"github.com/m04kA/SMC-HotelReservations/internal/service/reservations/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err    error
	lastID int64
	last   *models.CancelReservationRequest
}

func (f *fakeService) Cancel(_ context.Context, id int64, req *models.CancelReservationRequest) error {
	f.lastID = id
	f.last = req
	return f.err
}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Handle("/reservations/{reservationId}/cancel", middleware.Auth(http.HandlerFunc(NewHandler(svc, nopLogger{}).Handle)))

	r := httptest.NewRequest(http.MethodPatch, "/reservations/15/cancel", strings.NewReader(body))
	r.Header.Set(middleware.UserIDHeader, "501")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandler_Cancelled(t *testing.T) {
	svc := &fakeService{}
	w := serve(svc, `{"cancellationReason":"plans changed"}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, int64(15), svc.lastID)
	assert.Equal(t, int64(501), svc.last.UserID)
	assert.Equal(t, "plans changed", svc.last.CancellationReason)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{reservations.ErrReservationNotFound, http.StatusNotFound},
		{reservations.ErrAccessDenied, http.StatusForbidden},
		{reservations.ErrCannotCancel, http.StatusConflict},
		{reservations.ErrStatusConflict, http.StatusConflict},
		{reservations.ErrInvalidInput, http.StatusBadRequest},
		{reservations.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := serve(&fakeService{err: tt.err}, `{}`)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
