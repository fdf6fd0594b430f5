package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout формат даты без времени (YYYY-MM-DD)
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDateFormat возвращается при некорректном формате даты
	ErrInvalidDateFormat = errors.New("invalid date string format")

	// ErrUnsupportedScanType возвращается, когда значение из БД нельзя преобразовать в дату
	ErrUnsupportedScanType = errors.New("unsupported scan type for date")
)

// Date календарная дата без времени суток.
// Внутри всегда хранится полночь UTC, поэтому две даты можно сравнивать напрямую.
type Date struct {
	t time.Time
}

// NewDate создает дату из года, месяца и дня
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf отбрасывает время суток у t (в его собственной временной зоне)
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return Date{t: t}, nil
}

// Time возвращает полночь UTC этой даты
func (d Date) Time() time.Time {
	return d.t
}

// IsZero returns true if the date was never set
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// String возвращает дату в формате YYYY-MM-DD
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Before returns true if d is strictly before other
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After returns true if d is strictly after other
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal returns true if both values denote the same calendar day
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// AddDays сдвигает дату на n дней (n может быть отрицательным)
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil возвращает количество дней от d до other (отрицательное, если other раньше)
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// Scan implements sql.Scanner
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedScanType, src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// MarshalJSON сериализует дату как "YYYY-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON парсит дату из "YYYY-MM-DD"
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
