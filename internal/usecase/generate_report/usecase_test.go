package generate_report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/hotel"
	"github.com/m04kA/SMC-HotelReservations/internal/infra/report/pdf"
	"github.com/m04kA/SMC-HotelReservations/pkg/ptr"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeMetrics struct{ reports []string }

func (f *fakeMetrics) ObserveReport(kind, format string) {
	f.reports = append(f.reports, kind+"/"+format)
}

type fakeHotelRepo struct{}

func (fakeHotelRepo) GetByID(_ context.Context, id int64) (*domain.Hotel, error) {
	if id != 1 {
		return nil, hotelRepo.ErrHotelNotFound
	}
	return &domain.Hotel{ID: 1, Name: "Seaside", ManagerIDs: []int64{77}}, nil
}

type fakeRoomRepo struct{ count int }

func (f fakeRoomRepo) CountByHotel(context.Context, int64) (int, error) { return f.count, nil }

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	lastFilter   domain.ReservationsFilter
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return f.reservations, nil
}

type fixture struct {
	uc           *UseCase
	reservations *fakeReservationRepo
	metrics      *fakeMetrics
}

func newFixture() fixture {
	f := fixture{
		reservations: &fakeReservationRepo{reservations: reportReservations()},
		metrics:      &fakeMetrics{},
	}
	f.uc = NewUseCase(fakeHotelRepo{}, fakeRoomRepo{count: 4}, f.reservations, pdf.NewRenderer("test"), f.metrics, nopLogger{})
	f.uc.timeProvider = fixedTime{now: time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)}
	return f
}

func periodRequest(kind string) *Request {
	from, to := mar(1), mar(4)
	return &Request{UserID: 77, HotelID: 1, Kind: kind, From: &from, To: &to}
}

func TestUseCase_Execute_Occupancy(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), periodRequest("occupancy"))
	require.NoError(t, err)

	assert.Equal(t, domain.ReportOccupancy, resp.Kind)
	assert.Equal(t, FormatJSON, resp.Format)
	assert.Equal(t, "Seaside", resp.HotelName)
	assert.Len(t, resp.Occupancy, 3)
	assert.Equal(t, 50.0, resp.Summary.AverageOccupancy)
	assert.Nil(t, resp.PDF)

	assert.Equal(t, int64(1), f.reservations.lastFilter.HotelID)
	assert.False(t, f.reservations.lastFilter.IncludeCancelled)
	assert.Equal(t, []string{"occupancy/json"}, f.metrics.reports)
}

func TestUseCase_Execute_PDF(t *testing.T) {
	for _, kind := range []string{"occupancy", "financial", "no_show"} {
		t.Run(kind, func(t *testing.T) {
			f := newFixture()
			req := periodRequest(kind)
			req.Format = FormatPDF

			resp, err := f.uc.Execute(context.Background(), req)
			require.NoError(t, err)

			assert.True(t, bytes.HasPrefix(resp.PDF, []byte("%PDF")))
			assert.Equal(t, kind+"-report-1-2025-03-01-2025-03-04.pdf", resp.Filename)
		})
	}
}

func TestUseCase_Execute_Forecast(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{UserID: 77, HotelID: 1, Kind: "forecast", Days: ptr.Ptr(3)})
	require.NoError(t, err)

	assert.Equal(t, mar(1), resp.From)
	assert.Equal(t, mar(4), resp.To)
	assert.Equal(t, 2, resp.Summary.RoomNights)

	resp, err = f.uc.Execute(context.Background(), &Request{UserID: 77, HotelID: 1, Kind: "forecast"})
	require.NoError(t, err)
	assert.Len(t, resp.Occupancy, domain.DefaultForecastDays)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tooLong := mar(1).AddDays(domain.MaxReportDays + 1)
	inverted := types.NewDate(2025, time.February, 1)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"not a manager", &Request{UserID: 5, HotelID: 1, Kind: "occupancy", From: ptr.Ptr(mar(1)), To: ptr.Ptr(mar(4))}, ErrAccessDenied},
		{"unknown hotel", &Request{UserID: 77, HotelID: 2, Kind: "occupancy", From: ptr.Ptr(mar(1)), To: ptr.Ptr(mar(4))}, ErrHotelNotFound},
		{"unknown kind", &Request{UserID: 77, HotelID: 1, Kind: "adr"}, ErrUnknownKind},
		{"unknown format", &Request{UserID: 77, HotelID: 1, Kind: "occupancy", Format: "xlsx"}, ErrInvalidInput},
		{"missing period", &Request{UserID: 77, HotelID: 1, Kind: "financial"}, ErrInvalidInput},
		{"inverted period", &Request{UserID: 77, HotelID: 1, Kind: "financial", From: ptr.Ptr(mar(1)), To: &inverted}, ErrInvalidInput},
		{"period too long", &Request{UserID: 77, HotelID: 1, Kind: "financial", From: ptr.Ptr(mar(1)), To: &tooLong}, ErrInvalidInput},
		{"forecast too far", &Request{UserID: 77, HotelID: 1, Kind: "forecast", Days: ptr.Ptr(domain.MaxForecastDays + 1)}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.metrics.reports)
		})
	}
}
