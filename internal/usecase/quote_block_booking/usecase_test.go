package quote_block_booking

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/hotel"
	"github.com/m04kA/SMC-HotelReservations/internal/pricing"
	"github.com/m04kA/SMC-HotelReservations/pkg/ptr"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeMetrics struct{ quotes []bool }

func (f *fakeMetrics) ObserveBlockQuote(eligible bool) { f.quotes = append(f.quotes, eligible) }

type fakeHotelRepo struct{ hotels map[int64]*domain.Hotel }

func (f fakeHotelRepo) GetByID(_ context.Context, id int64) (*domain.Hotel, error) {
	hotel, ok := f.hotels[id]
	if !ok {
		return nil, hotelRepo.ErrHotelNotFound
	}
	return hotel, nil
}

type fakeRoomRepo struct{ rooms []*domain.Room }

func (f fakeRoomRepo) GetByIDs(_ context.Context, hotelID int64, ids []int64) ([]*domain.Room, error) {
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var result []*domain.Room
	for _, room := range f.rooms {
		if room.HotelID == hotelID && wanted[room.ID] {
			result = append(result, room)
		}
	}
	return result, nil
}

type fakeReservationRepo struct{ reservations []*domain.Reservation }

func (f fakeReservationRepo) GetWithFilter(context.Context, domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

func mar(day int) types.Date { return types.NewDate(2025, time.March, day) }

func newTestUseCase(reservations ...*domain.Reservation) (*UseCase, *fakeMetrics) {
	hotels := fakeHotelRepo{hotels: map[int64]*domain.Hotel{
		1: {ID: 1, Name: "Grand Plaza"},
		2: {ID: 2, Name: "Seaside", BlockMinimumRooms: ptr.Ptr(2), BlockDiscountPercentage: ptr.Ptr(10.0)},
	}}

	var rooms []*domain.Room
	for i := int64(1); i <= 6; i++ {
		rooms = append(rooms, &domain.Room{
			ID: 100 + i, HotelID: 1, Number: strconv.FormatInt(100+i, 10),
			Capacity: 2, NightlyRate: 150, Status: domain.RoomStatusAvailable,
		})
	}
	rooms = append(rooms,
		&domain.Room{ID: 201, HotelID: 2, Number: "A", Capacity: 2, NightlyRate: 100, Status: domain.RoomStatusAvailable},
		&domain.Room{ID: 202, HotelID: 2, Number: "B", Capacity: 2, NightlyRate: 100, Status: domain.RoomStatusAvailable},
		&domain.Room{ID: 203, HotelID: 2, Number: "C", Capacity: 2, NightlyRate: 100, Status: domain.RoomStatusMaintenance},
	)

	metrics := &fakeMetrics{}
	uc := NewUseCase(hotels, fakeRoomRepo{rooms: rooms}, fakeReservationRepo{reservations: reservations},
		pricing.DefaultConfig(), 50, metrics, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)}
	return uc, metrics
}

func TestUseCase_Execute_AgencyScenario(t *testing.T) {
	uc, metrics := newTestUseCase()

	// 6 номеров по 150 за 3 ночи: 2700, скидка 15% = 405
	resp, err := uc.Execute(context.Background(), &Request{
		HotelID:  1,
		RoomIDs:  []int64{101, 102, 103, 104, 105, 106},
		CheckIn:  mar(1),
		CheckOut: mar(4),
	})
	require.NoError(t, err)

	assert.Equal(t, 6, resp.RoomCount)
	assert.Equal(t, 5, resp.MinimumRooms)
	assert.Equal(t, 2700.0, resp.Subtotal)
	assert.True(t, resp.IsEligible)
	assert.Equal(t, 15.0, resp.DiscountPercentage)
	assert.Equal(t, 405.0, resp.DiscountAmount)
	assert.Equal(t, 2295.0, resp.FinalAmount)
	assert.Equal(t, resp.DiscountAmount, resp.Savings)
	assert.True(t, resp.AllAvailable)

	require.Len(t, resp.Rooms, 6)
	for _, line := range resp.Rooms {
		assert.Equal(t, 450.0, line.Subtotal)
		assert.Equal(t, 67.5, line.DiscountAmount)
		assert.Equal(t, 382.5, line.FinalAmount)
	}
	assert.Equal(t, []bool{true}, metrics.quotes)
}

func TestUseCase_Execute_BelowThreshold(t *testing.T) {
	uc, metrics := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		HotelID: 1, RoomIDs: []int64{101, 102, 103, 104}, CheckIn: mar(1), CheckOut: mar(2),
	})
	require.NoError(t, err)

	assert.False(t, resp.IsEligible)
	assert.Equal(t, 0.0, resp.DiscountPercentage)
	assert.Equal(t, 0.0, resp.DiscountAmount)
	assert.Equal(t, 600.0, resp.FinalAmount)
	assert.Equal(t, []bool{false}, metrics.quotes)
}

func TestUseCase_Execute_HotelOverride(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		HotelID: 2, RoomIDs: []int64{201, 202}, CheckIn: mar(1), CheckOut: mar(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.MinimumRooms)
	assert.True(t, resp.IsEligible)
	assert.Equal(t, 10.0, resp.DiscountPercentage)
	assert.Equal(t, 40.0, resp.DiscountAmount)
	assert.Equal(t, 360.0, resp.FinalAmount)
}

func TestUseCase_Execute_ReportsUnavailableRooms(t *testing.T) {
	uc, _ := newTestUseCase(&domain.Reservation{
		ID: 1, RoomID: 102, CheckIn: mar(2), CheckOut: mar(5), Status: domain.StatusConfirmed,
	})

	resp, err := uc.Execute(context.Background(), &Request{
		HotelID: 1, RoomIDs: []int64{101, 102}, CheckIn: mar(1), CheckOut: mar(3),
	})
	require.NoError(t, err)

	assert.False(t, resp.AllAvailable)
	assert.True(t, resp.Rooms[0].Available)
	assert.False(t, resp.Rooms[1].Available)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "no rooms", req: &Request{HotelID: 1, CheckIn: mar(1), CheckOut: mar(2)}, wantErr: ErrInvalidInput},
		{name: "duplicate room", req: &Request{HotelID: 1, RoomIDs: []int64{101, 101}, CheckIn: mar(1), CheckOut: mar(2)}, wantErr: ErrInvalidInput},
		{name: "room of another hotel", req: &Request{HotelID: 1, RoomIDs: []int64{101, 201}, CheckIn: mar(1), CheckOut: mar(2)}, wantErr: ErrRoomNotFound},
		{name: "room under maintenance", req: &Request{HotelID: 2, RoomIDs: []int64{201, 203}, CheckIn: mar(1), CheckOut: mar(2)}, wantErr: ErrRoomUnderMaintenance},
		{name: "hotel not found", req: &Request{HotelID: 3, RoomIDs: []int64{1}, CheckIn: mar(1), CheckOut: mar(2)}, wantErr: ErrHotelNotFound},
		{name: "invalid interval", req: &Request{HotelID: 1, RoomIDs: []int64{101}, CheckIn: mar(2), CheckOut: mar(1)}, wantErr: ErrInvalidInput},
		{name: "past dates", req: &Request{HotelID: 1, RoomIDs: []int64{101}, CheckIn: types.NewDate(2025, 1, 20), CheckOut: mar(1)}, wantErr: ErrDateInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, metrics := newTestUseCase()

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, metrics.quotes)
		})
	}

	t.Run("too many rooms", func(t *testing.T) {
		uc, _ := newTestUseCase()
		uc.maxRooms = 2

		_, err := uc.Execute(context.Background(), &Request{
			HotelID: 1, RoomIDs: []int64{101, 102, 103}, CheckIn: mar(1), CheckOut: mar(2),
		})
		assert.ErrorIs(t, err, ErrTooManyRooms)
	})
}
