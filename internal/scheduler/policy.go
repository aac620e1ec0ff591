package scheduler

import (
	"time"

	"taskboard/internal/models"
)

// EvaluateWindows decides which events apply to the task today. It is a
// pure function of (now, task): calling it twice in the same run yields
// the same result.
//
// Precedence: a due date strictly before today short-circuits into a
// single Overdue event. Otherwise the 7-day and 24-hour windows are
// checked at day granularity against their weekend-shifted trigger
// dates, and the 12-hour window is checked independently at hour
// granularity against now, so it can co-fire with a day-granular
// reminder. A task due today produces no overdue or day-granular event.
func EvaluateWindows(now time.Time, task models.Task) []Event {
	if !task.Open() || task.DueDate == nil {
		return nil
	}

	due := *task.DueDate
	today := StartOfDay(now)
	dueDay := StartOfDay(due)

	if dueDay.Before(today) {
		return []Event{EventOverdue}
	}

	var events []Event

	switch DaysBetween(today, dueDay) {
	case 7:
		trigger := ShiftOffWeekend(dueDay.AddDate(0, 0, -7))
		if StartOfDay(trigger).Equal(today) {
			events = append(events, EventSevenDay)
		}
	case 1:
		trigger := ShiftOffWeekend(dueDay.AddDate(0, 0, -1))
		if StartOfDay(trigger).Equal(today) {
			events = append(events, EventTwentyFourHour)
		}
	}

	// Hour-granular check against the stored due timestamp. With a daily
	// run cadence this only fires when the run happens to land inside the
	// (11, 12] band, which makes it a best-effort notice.
	if h := due.Sub(now).Hours(); h > 11 && h <= 12 {
		events = append(events, EventTwelveHour)
	}

	return events
}
