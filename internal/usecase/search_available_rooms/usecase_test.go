package search_available_rooms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/internal/availability"
	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/hotel"
	"github.com/m04kA/SMC-HotelReservations/pkg/ptr"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeMetrics struct{ outcomes []string }

func (f *fakeMetrics) ObserveAvailabilitySearch(outcome string) {
	f.outcomes = append(f.outcomes, outcome)
}

type fakeHotelRepo struct{}

func (fakeHotelRepo) GetByID(_ context.Context, id int64) (*domain.Hotel, error) {
	if id != 1 {
		return nil, hotelRepo.ErrHotelNotFound
	}
	return &domain.Hotel{ID: 1, Name: "Grand Plaza"}, nil
}

type fakeRoomRepo struct{ rooms []*domain.Room }

func (f fakeRoomRepo) ListByHotel(context.Context, int64) ([]*domain.Room, error) {
	return f.rooms, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	lastFilter   domain.ReservationsFilter
	err          error
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return f.reservations, f.err
}

func mar(day int) types.Date { return types.NewDate(2025, time.March, day) }

func newTestUseCase(reservations []*domain.Reservation) (*UseCase, *fakeReservationRepo, *fakeMetrics) {
	rooms := fakeRoomRepo{rooms: []*domain.Room{
		{ID: 101, HotelID: 1, Number: "101", Type: domain.RoomTypeDouble, Capacity: 2, NightlyRate: 100, Status: domain.RoomStatusAvailable},
		{ID: 102, HotelID: 1, Number: "102", Type: domain.RoomTypeSuite, Capacity: 4, NightlyRate: 180.5, Status: domain.RoomStatusAvailable},
		{ID: 103, HotelID: 1, Number: "103", Type: domain.RoomTypeSingle, Capacity: 1, NightlyRate: 70, Status: domain.RoomStatusMaintenance},
	}}
	reservationRepo := &fakeReservationRepo{reservations: reservations}
	metrics := &fakeMetrics{}

	uc := NewUseCase(fakeHotelRepo{}, rooms, reservationRepo, metrics, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2025, time.February, 20, 9, 0, 0, 0, time.UTC)}
	return uc, reservationRepo, metrics
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("excludes booked and maintenance rooms", func(t *testing.T) {
		uc, repo, metrics := newTestUseCase([]*domain.Reservation{
			{ID: 1, RoomID: 101, CheckIn: mar(1), CheckOut: mar(5), Status: domain.StatusConfirmed},
		})

		resp, err := uc.Execute(ctx, &Request{HotelID: 1, CheckIn: mar(3), CheckOut: mar(6)})
		require.NoError(t, err)

		require.Len(t, resp.Rooms, 1)
		assert.Equal(t, int64(102), resp.Rooms[0].RoomID)
		assert.Equal(t, 3, resp.Nights)
		assert.Equal(t, 541.5, resp.Rooms[0].StayPrice)
		assert.Equal(t, mar(3), *repo.lastFilter.From)
		assert.Equal(t, mar(6), *repo.lastFilter.To)
		assert.False(t, repo.lastFilter.IncludeCancelled)
		assert.Equal(t, []string{outcomeFound}, metrics.outcomes)
	})

	t.Run("checkout day is free for a new arrival", func(t *testing.T) {
		uc, _, _ := newTestUseCase([]*domain.Reservation{
			{ID: 1, RoomID: 101, CheckIn: mar(1), CheckOut: mar(5), Status: domain.StatusConfirmed},
		})

		resp, err := uc.Execute(ctx, &Request{HotelID: 1, CheckIn: mar(5), CheckOut: mar(7)})
		require.NoError(t, err)
		assert.Len(t, resp.Rooms, 2)
	})

	t.Run("no-show still blocks, cancelled does not", func(t *testing.T) {
		uc, _, _ := newTestUseCase([]*domain.Reservation{
			{ID: 1, RoomID: 101, CheckIn: mar(1), CheckOut: mar(5), Status: domain.StatusNoShow},
			{ID: 2, RoomID: 102, CheckIn: mar(1), CheckOut: mar(5), Status: domain.StatusCancelled},
		})

		resp, err := uc.Execute(ctx, &Request{HotelID: 1, CheckIn: mar(2), CheckOut: mar(3)})
		require.NoError(t, err)
		require.Len(t, resp.Rooms, 1)
		assert.Equal(t, int64(102), resp.Rooms[0].RoomID)
	})

	t.Run("filters by capacity", func(t *testing.T) {
		uc, _, metrics := newTestUseCase(nil)

		resp, err := uc.Execute(ctx, &Request{HotelID: 1, CheckIn: mar(2), CheckOut: mar(3), Guests: ptr.Ptr(5)})
		require.NoError(t, err)
		assert.Empty(t, resp.Rooms)
		assert.Equal(t, []string{outcomeEmpty}, metrics.outcomes)
	})

	t.Run("reversed dates are an invalid interval", func(t *testing.T) {
		uc, _, metrics := newTestUseCase(nil)

		_, err := uc.Execute(ctx, &Request{HotelID: 1, CheckIn: mar(5), CheckOut: mar(5)})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorIs(t, err, availability.ErrInvalidInterval)
		assert.Equal(t, []string{outcomeError}, metrics.outcomes)
	})

	t.Run("past check-in", func(t *testing.T) {
		uc, _, _ := newTestUseCase(nil)

		_, err := uc.Execute(ctx, &Request{HotelID: 1, CheckIn: types.NewDate(2025, time.February, 19), CheckOut: mar(1)})
		assert.ErrorIs(t, err, ErrDateInPast)
	})

	t.Run("stay too long", func(t *testing.T) {
		uc, _, _ := newTestUseCase(nil)

		_, err := uc.Execute(ctx, &Request{HotelID: 1, CheckIn: mar(1), CheckOut: mar(1).AddDays(31)})
		assert.ErrorIs(t, err, ErrStayTooLong)
	})

	t.Run("hotel not found", func(t *testing.T) {
		uc, _, _ := newTestUseCase(nil)

		_, err := uc.Execute(ctx, &Request{HotelID: 2, CheckIn: mar(1), CheckOut: mar(2)})
		assert.ErrorIs(t, err, ErrHotelNotFound)
	})

	t.Run("malformed stored reservation is internal", func(t *testing.T) {
		uc, _, _ := newTestUseCase([]*domain.Reservation{
			{ID: 9, RoomID: 101, CheckIn: mar(4), CheckOut: mar(2), Status: domain.StatusConfirmed},
		})

		_, err := uc.Execute(ctx, &Request{HotelID: 1, CheckIn: mar(1), CheckOut: mar(3)})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("repository error", func(t *testing.T) {
		uc, repo, _ := newTestUseCase(nil)
		repo.err = errors.New("connection reset")

		_, err := uc.Execute(ctx, &Request{HotelID: 1, CheckIn: mar(1), CheckOut: mar(2)})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
