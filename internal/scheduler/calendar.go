package scheduler

import "time"

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ShiftOffWeekend moves a reminder trigger date off the weekend:
// Saturday goes back one day, Sunday goes back two, both landing on the
// preceding Friday. The shift only ever moves the date earlier so the
// recipient keeps at least the intended lead time. Due dates themselves
// are never shifted.
func ShiftOffWeekend(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, -1)
	case time.Sunday:
		return t.AddDate(0, 0, -2)
	default:
		return t
	}
}

// DaysBetween counts calendar days from one start-of-day to another.
// Rounding absorbs DST transitions where a day is not exactly 24h.
func DaysBetween(from, to time.Time) int {
	d := StartOfDay(to).Sub(StartOfDay(from)).Hours() / 24
	if d < 0 {
		return int(d - 0.5)
	}
	return int(d + 0.5)
}
