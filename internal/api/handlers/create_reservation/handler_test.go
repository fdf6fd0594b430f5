package create_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-HotelReservations/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	err  error
	last *createReservation.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &createReservation.Response{
		ID:               1,
		ConfirmationCode: "CODE",
		HotelID:          req.HotelID,
		RoomID:           req.RoomID,
		GuestUserID:      req.UserID,
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		Nights:           req.CheckIn.DaysUntil(req.CheckOut),
		Guests:           req.Guests,
		Status:           "reserved",
		TotalAmount:      300,
		FinalAmount:      300,
		CreatedAt:        time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC),
	}, nil
}

func serve(h *Handler, userID int64, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	if userID > 0 {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

const validBody = `{"hotelId":1,"roomId":101,"checkIn":"2025-03-10","checkOut":"2025-03-13","guests":2}`

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{}
	w := serve(NewHandler(uc, nopLogger{}), 501, validBody)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CODE", resp.ConfirmationCode)
	assert.Equal(t, "2025-03-10", resp.CheckIn)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, int64(501), uc.last.UserID)
	assert.Equal(t, types.NewDate(2025, time.March, 13), uc.last.CheckOut)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		userID int64
		body   string
		err    error
		want   int
	}{
		{"missing user", 0, validBody, nil, http.StatusUnauthorized},
		{"malformed body", 501, `{`, nil, http.StatusBadRequest},
		{"bad date", 501, `{"hotelId":1,"roomId":101,"checkIn":"10.03.2025","checkOut":"2025-03-13","guests":2}`, nil, http.StatusBadRequest},
		{"room taken", 501, validBody, createReservation.ErrRoomNotAvailable, http.StatusConflict},
		{"maintenance", 501, validBody, createReservation.ErrRoomUnderMaintenance, http.StatusConflict},
		{"hotel missing", 501, validBody, createReservation.ErrHotelNotFound, http.StatusNotFound},
		{"room missing", 501, validBody, createReservation.ErrRoomNotFound, http.StatusNotFound},
		{"inverted interval", 501, validBody, fmt.Errorf("%w: bad interval", createReservation.ErrInvalidInput), http.StatusBadRequest},
		{"past", 501, validBody, createReservation.ErrDateInPast, http.StatusBadRequest},
		{"internal", 501, validBody, fmt.Errorf("%w: db down", createReservation.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), tt.userID, tt.body)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
