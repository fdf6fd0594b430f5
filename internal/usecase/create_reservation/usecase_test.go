package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/internal/availability"
	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/hotel"
	reservationRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/room"
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

type fakeTxManager struct{ calls int }

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeMetrics struct {
	kind  string
	count int
}

func (f *fakeMetrics) ObserveReservationCreated(kind string, count int) {
	f.kind = kind
	f.count += count
}

type fakeHotelRepo struct{}

func (fakeHotelRepo) GetByID(_ context.Context, id int64) (*domain.Hotel, error) {
	if id != 1 {
		return nil, hotelRepo.ErrHotelNotFound
	}
	return &domain.Hotel{ID: 1}, nil
}

type fakeRoomRepo struct{ rooms map[int64]*domain.Room }

func (f fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type fakeReservationRepo struct {
	existing    []*domain.Reservation
	created     []*domain.Reservation
	lastFilter  domain.ReservationsFilter
	raceOnWrite bool
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return f.existing, nil
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if f.raceOnWrite {
		return nil, reservationRepo.ErrRoomNotAvailable
	}
	r.ID = int64(len(f.created) + 1)
	f.created = append(f.created, r)
	return r, nil
}

func mar(day int) types.Date { return types.NewDate(2025, time.March, day) }

type fixture struct {
	uc           *UseCase
	reservations *fakeReservationRepo
	tx           *fakeTxManager
	metrics      *fakeMetrics
}

func newFixture(existing ...*domain.Reservation) fixture {
	rooms := fakeRoomRepo{rooms: map[int64]*domain.Room{
		101: {ID: 101, HotelID: 1, Number: "101", Capacity: 2, NightlyRate: 99.99, Status: domain.RoomStatusAvailable},
		102: {ID: 102, HotelID: 1, Number: "102", Capacity: 2, NightlyRate: 120, Status: domain.RoomStatusMaintenance},
		201: {ID: 201, HotelID: 2, Number: "201", Capacity: 2, NightlyRate: 80, Status: domain.RoomStatusAvailable},
	}}
	f := fixture{
		reservations: &fakeReservationRepo{existing: existing},
		tx:           &fakeTxManager{},
		metrics:      &fakeMetrics{},
	}
	f.uc = NewUseCase(fakeHotelRepo{}, rooms, f.reservations, f.tx, f.metrics, nopLogger{})
	f.uc.timeProvider = fixedTime{now: time.Date(2025, time.February, 28, 23, 0, 0, 0, time.UTC)}
	f.uc.codeGenerator = fixedCode("CODE-1")
	return f
}

func validRequest() *Request {
	return &Request{UserID: 501, HotelID: 1, RoomID: 101, CheckIn: mar(1), CheckOut: mar(4), Guests: 2}
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture(
		// Выезд в день заезда нового гостя не мешает
		&domain.Reservation{ID: 7, RoomID: 101, CheckIn: types.NewDate(2025, time.February, 26), CheckOut: mar(1), Status: domain.StatusCheckedIn},
		&domain.Reservation{ID: 8, RoomID: 101, CheckIn: mar(2), CheckOut: mar(3), Status: domain.StatusCancelled},
	)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "CODE-1", resp.ConfirmationCode)
	assert.Equal(t, "reserved", resp.Status)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, 299.97, resp.TotalAmount)
	assert.Equal(t, 299.97, resp.FinalAmount)
	assert.Equal(t, "101", resp.RoomNumber)

	assert.Equal(t, 1, f.tx.calls)
	assert.True(t, f.reservations.lastFilter.ForUpdate)
	assert.Equal(t, []int64{101}, f.reservations.lastFilter.RoomIDs)
	assert.Equal(t, "single", f.metrics.kind)
	assert.Equal(t, 1, f.metrics.count)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		existing []*domain.Reservation
		mutate   func(*Request)
		race     bool
		wantErr  error
	}{
		{
			name:     "overlapping reservation",
			existing: []*domain.Reservation{{ID: 1, RoomID: 101, CheckIn: mar(3), CheckOut: mar(6), Status: domain.StatusConfirmed}},
			wantErr:  ErrRoomNotAvailable,
		},
		{
			name:     "no-show still holds the room",
			existing: []*domain.Reservation{{ID: 1, RoomID: 101, CheckIn: mar(1), CheckOut: mar(2), Status: domain.StatusNoShow}},
			wantErr:  ErrRoomNotAvailable,
		},
		{
			name:    "exclusion constraint backstop",
			race:    true,
			wantErr: ErrRoomNotAvailable,
		},
		{
			name:    "room under maintenance",
			mutate:  func(r *Request) { r.RoomID = 102 },
			wantErr: ErrRoomUnderMaintenance,
		},
		{
			name:    "room of another hotel",
			mutate:  func(r *Request) { r.RoomID = 201 },
			wantErr: ErrRoomNotFound,
		},
		{
			name:    "unknown room",
			mutate:  func(r *Request) { r.RoomID = 999 },
			wantErr: ErrRoomNotFound,
		},
		{
			name:    "unknown hotel",
			mutate:  func(r *Request) { r.HotelID = 5 },
			wantErr: ErrHotelNotFound,
		},
		{
			name:    "too many guests",
			mutate:  func(r *Request) { r.Guests = 3 },
			wantErr: ErrCapacityExceeded,
		},
		{
			name:    "check-in in the past",
			mutate:  func(r *Request) { r.CheckIn = types.NewDate(2025, time.February, 27) },
			wantErr: ErrDateInPast,
		},
		{
			name:    "stay too long",
			mutate:  func(r *Request) { r.CheckOut = mar(1).AddDays(31) },
			wantErr: ErrStayTooLong,
		},
		{
			name:    "reversed dates",
			mutate:  func(r *Request) { r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn },
			wantErr: availability.ErrInvalidInterval,
		},
		{
			name:    "zero guests",
			mutate:  func(r *Request) { r.Guests = 0 },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.existing...)
			f.reservations.raceOnWrite = tt.race

			req := validRequest()
			if tt.mutate != nil {
				tt.mutate(req)
			}

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.reservations.created)
			assert.Zero(t, f.metrics.count)
		})
	}
}
