package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// minutesPerDay количество минут в сутках, используется для модульной арифметики
const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени (ожидается "HH:MM")
	ErrInvalidTimeFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrInvalidScanType возвращается, когда значение из БД нельзя привести к TimeString
	ErrInvalidScanType = errors.New("types: unsupported scan type for TimeString")
)

// TimeString represents a wall-clock time of day in "HH:MM" 24-hour format.
// It is stored and compared as a plain string, so the zero value is "".
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses s as "HH:MM" and returns a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes creates a TimeString from minutes since midnight.
// Values outside [0, 1440) wrap around within a single day.
func NewTimeStringFromMinutes(minutes int) TimeString {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (t TimeString) Validate() error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	if _, err := time.Parse("15:04", string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	parsed, _ := time.Parse("15:04", string(t))
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time n minutes later, wrapping within a 24h day.
// The calendar date never rolls over; "23:50".AddMinutes(30) is "00:20".
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(minutes + n), nil
}

// IsBefore returns true if t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter returns true if t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer, storing the value as "HH:MM" text.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner.
// Поддерживает text/varchar колонки и колонки типа time (приходят как time.Time)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		// Колонки типа time Postgres может отдавать как "HH:MM:SS"
		if len(v) > 5 {
			v = v[:5]
		}
		*t = TimeString(v)
	case []byte:
		s := string(v)
		if len(s) > 5 {
			s = s[:5]
		}
		*t = TimeString(s)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("%w: %T", ErrInvalidScanType, src)
	}
	return nil
}
