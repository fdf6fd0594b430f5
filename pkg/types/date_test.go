package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-08-05")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.August, 5), d)
	assert.Equal(t, "2024-08-05", d.String())

	_, err = ParseDate("05.08.2024")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDateOf_DropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	d := DateOf(time.Date(2024, time.August, 5, 23, 30, 0, 0, loc))

	assert.Equal(t, NewDate(2024, time.August, 5), d)
	assert.True(t, DateOf(time.Time{}).IsZero())
}

func TestDate_Arithmetic(t *testing.T) {
	checkIn := NewDate(2024, time.February, 27)
	checkOut := checkIn.AddDays(4)

	assert.Equal(t, NewDate(2024, time.March, 2), checkOut)
	assert.Equal(t, 4, checkIn.DaysUntil(checkOut))
	assert.Equal(t, -4, checkOut.DaysUntil(checkIn))
	assert.True(t, checkIn.Before(checkOut))
	assert.True(t, checkOut.After(checkIn))
	assert.True(t, checkIn.Equal(NewDate(2024, time.February, 27)))
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want Date
	}{
		{"time", time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), NewDate(2024, time.August, 1)},
		{"bytes", []byte("2024-08-01"), NewDate(2024, time.August, 1)},
		{"timestamp string", "2024-08-01T00:00:00Z", NewDate(2024, time.August, 1)},
		{"null", nil, Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d)
		})
	}

	var d Date
	assert.ErrorIs(t, d.Scan(42), ErrUnsupportedScanType)
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2024, time.August, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-08-01", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		CheckIn Date `json:"checkIn"`
	}

	data, err := json.Marshal(payload{CheckIn: NewDate(2024, time.August, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"checkIn":"2024-08-01"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"checkIn":"2024-08-03"}`), &p))
	assert.Equal(t, NewDate(2024, time.August, 3), p.CheckIn)

	assert.Error(t, json.Unmarshal([]byte(`{"checkIn":"tomorrow"}`), &p))
}
