package create_block_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/hotel"
	reservationRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/reservation"
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

type fixedCode string

func (c fixedCode) NewCode() string { return string(c) }

// fakeTxManager эмулирует откат: созданные в неуспешной транзакции записи отбрасываются
type fakeTxManager struct {
	calls        int
	reservations *fakeReservationRepo
	blocks       *fakeBlockRepo
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	reservations := len(f.reservations.created)
	blocks := len(f.blocks.created)
	if err := fn(ctx); err != nil {
		f.reservations.created = f.reservations.created[:reservations]
		f.blocks.created = f.blocks.created[:blocks]
		return err
	}
	return nil
}

type fakeMetrics struct {
	kind     string
	count    int
	eligible []bool
}

func (f *fakeMetrics) ObserveReservationCreated(kind string, count int) {
	f.kind = kind
	f.count += count
}

func (f *fakeMetrics) ObserveBlockQuote(eligible bool) {
	f.eligible = append(f.eligible, eligible)
}

type fakeHotelRepo struct{}

func (fakeHotelRepo) GetByID(_ context.Context, id int64) (*domain.Hotel, error) {
	switch id {
	case 1:
		return &domain.Hotel{ID: 1}, nil
	case 2:
		return &domain.Hotel{ID: 2, BlockMinimumRooms: ptr.Ptr(2), BlockDiscountPercentage: ptr.Ptr(10.0)}, nil
	}
	return nil, hotelRepo.ErrHotelNotFound
}

type fakeRoomRepo struct{ rooms []*domain.Room }

func (f fakeRoomRepo) GetByIDs(_ context.Context, hotelID int64, ids []int64) ([]*domain.Room, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var result []*domain.Room
	for _, room := range f.rooms {
		if room.HotelID == hotelID && want[room.ID] {
			result = append(result, room)
		}
	}
	return result, nil
}

type fakeReservationRepo struct {
	existing   []*domain.Reservation
	created    []*domain.Reservation
	lastFilter domain.ReservationsFilter
	failOnRoom int64
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return f.existing, nil
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if r.RoomID == f.failOnRoom {
		return nil, reservationRepo.ErrRoomNotAvailable
	}
	r.ID = int64(len(f.created) + 1)
	f.created = append(f.created, r)
	return r, nil
}

type fakeBlockRepo struct{ created []*domain.BlockBooking }

func (f *fakeBlockRepo) Create(_ context.Context, b *domain.BlockBooking) (*domain.BlockBooking, error) {
	b.ID = int64(len(f.created) + 10)
	f.created = append(f.created, b)
	return b, nil
}

func apr(day int) types.Date { return types.NewDate(2025, time.April, day) }

type fixture struct {
	uc           *UseCase
	reservations *fakeReservationRepo
	blocks       *fakeBlockRepo
	tx           *fakeTxManager
	metrics      *fakeMetrics
}

func newFixture(existing ...*domain.Reservation) fixture {
	rooms := fakeRoomRepo{}
	for i := int64(1); i <= 6; i++ {
		rooms.rooms = append(rooms.rooms, &domain.Room{
			ID: i, HotelID: 1, Number: fmt.Sprintf("30%d", i), Capacity: 2, NightlyRate: 150, Status: domain.RoomStatusAvailable,
		})
	}
	rooms.rooms = append(rooms.rooms,
		&domain.Room{ID: 7, HotelID: 1, Number: "307", Capacity: 2, NightlyRate: 150, Status: domain.RoomStatusMaintenance},
		&domain.Room{ID: 21, HotelID: 2, Number: "A1", Capacity: 1, NightlyRate: 100, Status: domain.RoomStatusAvailable},
		&domain.Room{ID: 22, HotelID: 2, Number: "A2", Capacity: 1, NightlyRate: 100, Status: domain.RoomStatusAvailable},
	)

	f := fixture{
		reservations: &fakeReservationRepo{existing: existing},
		blocks:       &fakeBlockRepo{},
		metrics:      &fakeMetrics{},
	}
	f.tx = &fakeTxManager{reservations: f.reservations, blocks: f.blocks}
	f.uc = NewUseCase(fakeHotelRepo{}, rooms, f.reservations, f.blocks, f.tx, pricing.DefaultConfig(), 0, f.metrics, nopLogger{})
	f.uc.timeProvider = fixedTime{now: time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)}
	f.uc.codeGenerator = fixedCode("BLK")
	return f
}

func validRequest() *Request {
	return &Request{
		AgencyUserID: 900,
		HotelID:      1,
		RoomIDs:      []int64{1, 2, 3, 4, 5, 6},
		CheckIn:      apr(10),
		CheckOut:     apr(13),
		Notes:        ptr.Ptr("tour group"),
	}
}

func TestUseCase_Execute_AgencyBlock(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "BLK", resp.ConfirmationCode)
	assert.Equal(t, 6, resp.RoomCount)
	assert.Equal(t, 3, resp.Nights)
	assert.True(t, resp.IsEligible)
	assert.Equal(t, 2700.0, resp.Subtotal)
	assert.Equal(t, 405.0, resp.DiscountAmount)
	assert.Equal(t, 2295.0, resp.FinalAmount)

	require.Len(t, resp.Reservations, 6)
	var discounts float64
	for i, r := range resp.Reservations {
		assert.Equal(t, fmt.Sprintf("BLK-%02d", i+1), r.ConfirmationCode)
		assert.Equal(t, 450.0, r.TotalAmount)
		assert.Equal(t, 67.5, r.DiscountAmount)
		assert.Equal(t, 382.5, r.FinalAmount)
		discounts += r.DiscountAmount
	}
	assert.InDelta(t, resp.DiscountAmount, discounts, 1e-9)

	require.Len(t, f.reservations.created, 6)
	for _, r := range f.reservations.created {
		assert.Equal(t, int64(900), r.GuestUserID)
		require.NotNil(t, r.AgencyUserID)
		assert.Equal(t, int64(900), *r.AgencyUserID)
		require.NotNil(t, r.BlockBookingID)
		assert.Equal(t, resp.BlockBookingID, *r.BlockBookingID)
		assert.Equal(t, 1, r.Guests)
		assert.Equal(t, domain.StatusReserved, r.Status)
		assert.Equal(t, "tour group", *r.Notes)
	}

	assert.Equal(t, 1, f.tx.calls)
	assert.True(t, f.reservations.lastFilter.ForUpdate)
	assert.Equal(t, "block", f.metrics.kind)
	assert.Equal(t, 6, f.metrics.count)
	assert.Equal(t, []bool{true}, f.metrics.eligible)
}

func TestUseCase_Execute_HotelOverride(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.HotelID = 2
	req.RoomIDs = []int64{21, 22}
	req.CheckOut = apr(12)

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.IsEligible)
	assert.Equal(t, 10.0, resp.DiscountPercentage)
	assert.Equal(t, 400.0, resp.Subtotal)
	assert.Equal(t, 40.0, resp.DiscountAmount)
	assert.Equal(t, 360.0, resp.FinalAmount)
}

func TestUseCase_Execute_BelowThreshold(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.RoomIDs = []int64{1, 2}

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.IsEligible)
	assert.Equal(t, 900.0, resp.FinalAmount)
	for _, r := range resp.Reservations {
		assert.Zero(t, r.DiscountAmount)
	}
}

func TestUseCase_Execute_AllOrNothing(t *testing.T) {
	t.Run("one busy room rejects the whole block", func(t *testing.T) {
		f := newFixture(&domain.Reservation{ID: 1, RoomID: 4, CheckIn: apr(12), CheckOut: apr(15), Status: domain.StatusNoShow})

		_, err := f.uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrRoomNotAvailable)
		assert.Contains(t, err.Error(), "304")
		assert.Empty(t, f.reservations.created)
		assert.Empty(t, f.blocks.created)
		assert.Zero(t, f.metrics.count)
	})

	t.Run("cancelled reservation does not block", func(t *testing.T) {
		f := newFixture(&domain.Reservation{ID: 1, RoomID: 4, CheckIn: apr(12), CheckOut: apr(15), Status: domain.StatusCancelled})

		_, err := f.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Len(t, f.reservations.created, 6)
	})

	t.Run("concurrent insert rolls back the block", func(t *testing.T) {
		f := newFixture()
		f.reservations.failOnRoom = 5

		_, err := f.uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrRoomNotAvailable)
		assert.Empty(t, f.reservations.created)
		assert.Empty(t, f.blocks.created)
	})
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"unknown hotel", func(r *Request) { r.HotelID = 9 }, ErrHotelNotFound},
		{"room of another hotel", func(r *Request) { r.RoomIDs = []int64{1, 21} }, ErrRoomNotFound},
		{"room under maintenance", func(r *Request) { r.RoomIDs = []int64{1, 7} }, ErrRoomUnderMaintenance},
		{"too many guests per room", func(r *Request) { r.GuestsPerRoom = 3 }, ErrCapacityExceeded},
		{"duplicate room", func(r *Request) { r.RoomIDs = []int64{1, 1} }, ErrInvalidInput},
		{"no rooms", func(r *Request) { r.RoomIDs = nil }, ErrInvalidInput},
		{"missing agency", func(r *Request) { r.AgencyUserID = 0 }, ErrInvalidInput},
		{"check-in in the past", func(r *Request) { r.CheckIn = apr(1).AddDays(-20) }, ErrDateInPast},
		{"stay too long", func(r *Request) { r.CheckOut = apr(10).AddDays(31) }, ErrStayTooLong},
		{"too many rooms", func(r *Request) {
			r.RoomIDs = make([]int64, domain.MaxBlockRooms+1)
			for i := range r.RoomIDs {
				r.RoomIDs[i] = int64(i + 1)
			}
		}, ErrTooManyRooms},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Empty(t, f.reservations.created)
		})
	}
}

func TestUseCase_Execute_InvertedInterval(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, f.tx.calls)
}
