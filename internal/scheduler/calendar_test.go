package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, IsWeekend(date(2024, time.June, 12))) // Wednesday
	assert.False(t, IsWeekend(date(2024, time.June, 14))) // Friday
	assert.True(t, IsWeekend(date(2024, time.June, 15)))  // Saturday
	assert.True(t, IsWeekend(date(2024, time.June, 16)))  // Sunday
	assert.False(t, IsWeekend(date(2024, time.June, 17))) // Monday
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2024, time.June, 12, 17, 45, 3, 999, time.UTC)
	assert.Equal(t, date(2024, time.June, 12), StartOfDay(ts))
}

func TestShiftOffWeekend(t *testing.T) {
	friday := date(2024, time.June, 14)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"weekday stays put", date(2024, time.June, 12), date(2024, time.June, 12)},
		{"saturday moves back one day to friday", date(2024, time.June, 15), friday},
		{"sunday moves back two days to friday", date(2024, time.June, 16), friday},
		{"monday stays put", date(2024, time.June, 17), date(2024, time.June, 17)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShiftOffWeekend(tt.in))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	wed := date(2024, time.June, 12)

	assert.Equal(t, 0, DaysBetween(wed, wed))
	assert.Equal(t, 7, DaysBetween(wed, date(2024, time.June, 19)))
	assert.Equal(t, 1, DaysBetween(wed, date(2024, time.June, 13)))
	assert.Equal(t, -1, DaysBetween(wed, date(2024, time.June, 11)))

	// time-of-day is ignored, only calendar days count
	lateWed := time.Date(2024, time.June, 12, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(lateWed, date(2024, time.June, 13)))
}
