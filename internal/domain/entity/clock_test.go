package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"08:00", 8 * time.Hour},
		{"08:00:30", 8*time.Hour + 30*time.Second},
		{"23:59:59", 23*time.Hour + 59*time.Minute + 59*time.Second},
		{"00:00", 0},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "8h", "24:00", "10:61", "abc"} {
		_, err := ParseClock(bad)
		assert.ErrorIs(t, err, ErrInvalidClock, bad)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:00:00", FormatClock(8*time.Hour))
	assert.Equal(t, "17:05:09", FormatClock(17*time.Hour+5*time.Minute+9*time.Second))
}

func TestParseDate_StripsTimeOfDay(t *testing.T) {
	d, err := ParseDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2025-03-14T22:45:10-03:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("14/03/2025")
	assert.Error(t, err)
}

func TestShiftStatus_IsValid(t *testing.T) {
	for _, s := range ShiftStatuses {
		assert.True(t, s.IsValid())
	}
	assert.False(t, ShiftStatus("archived").IsValid())
	assert.False(t, ShiftStatus("").IsValid())
}
