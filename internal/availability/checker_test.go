package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

func aug(day int) types.Date {
	return types.NewDate(2024, time.August, day)
}

func jan(day int) types.Date {
	return types.NewDate(2024, time.January, day)
}

func stay(t *testing.T, from, to types.Date) Interval {
	t.Helper()
	i, err := NewInterval(from, to)
	require.NoError(t, err)
	return i
}

func booked(roomID int64, from, to types.Date, status domain.ReservationStatus) ReservationInterval {
	return ReservationInterval{
		RoomID:   roomID,
		Interval: Interval{CheckIn: from, CheckOut: to},
		Status:   status,
	}
}

func TestIsOverlapping(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Interval
		expected bool
	}{
		{"identical", Interval{jan(1), jan(5)}, Interval{jan(1), jan(5)}, true},
		{"adjacent after", Interval{jan(1), jan(5)}, Interval{jan(5), jan(10)}, false},
		{"adjacent before", Interval{jan(5), jan(10)}, Interval{jan(1), jan(5)}, false},
		{"partial overlap", Interval{jan(1), jan(5)}, Interval{jan(4), jan(10)}, true},
		{"contained", Interval{jan(2), jan(3)}, Interval{jan(1), jan(10)}, true},
		{"containing", Interval{jan(1), jan(10)}, Interval{jan(2), jan(3)}, true},
		{"disjoint", Interval{jan(1), jan(3)}, Interval{jan(6), jan(9)}, false},
		{"single night overlap", Interval{jan(4), jan(5)}, Interval{jan(1), jan(5)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsOverlapping(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			reversed, err := IsOverlapping(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, got, reversed, "overlap must be symmetric")
		})
	}
}

func TestIsOverlapping_SelfOverlapForAnyStay(t *testing.T) {
	for nights := 1; nights <= 40; nights++ {
		x := Interval{CheckIn: jan(1), CheckOut: jan(1).AddDays(nights)}
		got, err := IsOverlapping(x, x)
		require.NoError(t, err)
		assert.True(t, got, "nights=%d", nights)
	}
}

func TestIsOverlapping_RejectsMalformedIntervals(t *testing.T) {
	valid := Interval{jan(1), jan(5)}

	_, err := IsOverlapping(Interval{jan(5), jan(5)}, valid)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = IsOverlapping(Interval{jan(6), jan(5)}, valid)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = IsOverlapping(valid, Interval{jan(9), jan(2)})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = IsOverlapping(Interval{CheckOut: jan(2)}, valid)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestNewInterval(t *testing.T) {
	i, err := NewInterval(aug(1), aug(5))
	require.NoError(t, err)
	assert.Equal(t, 4, i.Nights())
	assert.True(t, i.Contains(aug(1)))
	assert.True(t, i.Contains(aug(4)))
	assert.False(t, i.Contains(aug(5)))
	assert.Equal(t, "[2024-08-01, 2024-08-05)", i.String())

	_, err = NewInterval(aug(5), aug(1))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestIsRoomAvailable(t *testing.T) {
	t.Run("empty reservation list is always available", func(t *testing.T) {
		ok, err := IsRoomAvailable(101, stay(t, aug(1), aug(3)), nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("cancelled reservation over the exact range does not block", func(t *testing.T) {
		reservations := []ReservationInterval{booked(101, aug(1), aug(5), domain.StatusCancelled)}

		ok, err := IsRoomAvailable(101, stay(t, aug(1), aug(5)), reservations)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("no-show still blocks", func(t *testing.T) {
		reservations := []ReservationInterval{booked(101, aug(1), aug(5), domain.StatusNoShow)}

		ok, err := IsRoomAvailable(101, stay(t, aug(2), aug(3)), reservations)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("records of other rooms are ignored", func(t *testing.T) {
		reservations := []ReservationInterval{booked(102, aug(1), aug(5), domain.StatusConfirmed)}

		ok, err := IsRoomAvailable(101, stay(t, aug(1), aug(5)), reservations)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("malformed blocking record fails instead of reporting available", func(t *testing.T) {
		reservations := []ReservationInterval{
			booked(101, aug(20), aug(22), domain.StatusConfirmed),
			booked(101, aug(10), aug(10), domain.StatusConfirmed),
		}

		ok, err := IsRoomAvailable(101, stay(t, aug(1), aug(3)), reservations)
		assert.ErrorIs(t, err, ErrInvalidInterval)
		assert.False(t, ok)
	})

	t.Run("malformed cancelled record is ignored", func(t *testing.T) {
		reservations := []ReservationInterval{booked(101, aug(10), aug(2), domain.StatusCancelled)}

		ok, err := IsRoomAvailable(101, stay(t, aug(1), aug(3)), reservations)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("malformed candidate fails", func(t *testing.T) {
		_, err := IsRoomAvailable(101, Interval{aug(3), aug(1)}, nil)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestIsRoomAvailable_Room101Scenario(t *testing.T) {
	reservations := []ReservationInterval{booked(101, aug(1), aug(5), domain.StatusConfirmed)}

	ok, err := IsRoomAvailable(101, stay(t, aug(5), aug(8)), reservations)
	require.NoError(t, err)
	assert.True(t, ok, "arrival on the previous guest's check-out day is allowed")

	ok, err = IsRoomAvailable(101, stay(t, aug(4), aug(6)), reservations)
	require.NoError(t, err)
	assert.False(t, ok, "night of Aug 4 is taken")
}

func TestFilterAvailableRooms(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, Number: "101", Status: domain.RoomStatusAvailable},
		{ID: 2, Number: "102", Status: domain.RoomStatusMaintenance},
		{ID: 3, Number: "103", Status: domain.RoomStatusOccupied},
		{ID: 4, Number: "104", Status: domain.RoomStatusAvailable},
		{ID: 5, Number: "105", Status: domain.RoomStatusAvailable},
	}
	byRoom := map[int64][]ReservationInterval{
		4: {booked(4, aug(2), aug(6), domain.StatusConfirmed)},
		5: {booked(5, aug(2), aug(6), domain.StatusCancelled)},
	}
	candidate := stay(t, aug(3), aug(4))

	seq := FilterAvailableRooms(rooms, candidate, byRoom)

	collect := func() []string {
		numbers := make([]string, 0)
		for room, err := range seq {
			require.NoError(t, err)
			numbers = append(numbers, room.Number)
		}
		return numbers
	}

	assert.Equal(t, []string{"101", "103", "105"}, collect())
	assert.Equal(t, []string{"101", "103", "105"}, collect(), "sequence is restartable")
}

func TestFilterAvailableRooms_StopsEarly(t *testing.T) {
	rooms := []*domain.Room{{ID: 1}, {ID: 2}, {ID: 3}}

	count := 0
	for range FilterAvailableRooms(rooms, stay(t, aug(1), aug(2)), nil) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestFilterAvailableRooms_Errors(t *testing.T) {
	rooms := []*domain.Room{{ID: 1}, {ID: 2}, {ID: 3}}

	t.Run("invalid candidate", func(t *testing.T) {
		_, err := CollectAvailableRooms(rooms, Interval{aug(4), aug(2)}, nil)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("malformed record aborts at its room", func(t *testing.T) {
		byRoom := map[int64][]ReservationInterval{
			2: {booked(2, aug(9), aug(1), domain.StatusReserved)},
		}

		var failedRoom *domain.Room
		seen := 0
		for room, err := range FilterAvailableRooms(rooms, stay(t, aug(1), aug(2)), byRoom) {
			if err != nil {
				failedRoom = room
				assert.ErrorIs(t, err, ErrInvalidInterval)
				continue
			}
			seen++
		}

		require.NotNil(t, failedRoom)
		assert.Equal(t, int64(2), failedRoom.ID)
		assert.Equal(t, 1, seen, "room 3 is never evaluated")
	})
}

func TestGroupByRoom(t *testing.T) {
	reservations := []*domain.Reservation{
		{ID: 1, RoomID: 10, CheckIn: aug(1), CheckOut: aug(2), Status: domain.StatusConfirmed},
		{ID: 2, RoomID: 11, CheckIn: aug(1), CheckOut: aug(3), Status: domain.StatusReserved},
		{ID: 3, RoomID: 10, CheckIn: aug(5), CheckOut: aug(6), Status: domain.StatusNoShow},
	}

	byRoom := GroupByRoom(reservations)

	require.Len(t, byRoom[10], 2)
	assert.Equal(t, int64(3), byRoom[10][1].ReservationID)
	assert.Equal(t, domain.StatusNoShow, byRoom[10][1].Status)
	require.Len(t, byRoom[11], 1)
}
