package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	for _, input := range []string{"", "9:30", "09:60", "25:00", "09-30", "09:30:00", "ab:cd"} {
		_, err := NewTimeStringFromString(input)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", input)
	}
}

func TestMinutes(t *testing.T) {
	ts := TimeString("10:07")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 607, minutes)
}

func TestMinutes_Malformed(t *testing.T) {
	_, err := TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("09:45")
	got, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "10:15", got.String())
}

func TestAddMinutes_WrapsWithinDay(t *testing.T) {
	// Переход через полночь не меняет календарную дату
	ts := TimeString("23:50")
	got, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "00:20", got.String())
}

func TestAddMinutes_Negative(t *testing.T) {
	ts := TimeString("00:10")
	got, err := ts.AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, "23:40", got.String())
}

func TestComparisons(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("10:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 9, 10, 14, 5, 33, 0, time.UTC))
	assert.Equal(t, "14:05", ts.String())
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, "10:30", ts.String())

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, "08:15", ts.String())

	require.NoError(t, ts.Scan(time.Date(2025, 9, 10, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, "16:45", ts.String())

	assert.ErrorIs(t, ts.Scan(42), ErrInvalidScanType)
}

func TestValue(t *testing.T) {
	v, err := TimeString("11:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "11:00", v)

	_, err = TimeString("nope").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
