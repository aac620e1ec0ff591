package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/models"
)

func taskDue(due time.Time) models.Task {
	d := due
	return models.Task{
		ID:      1,
		OwnerID: 10,
		Status:  models.StatusPending,
		DueDate: &d,
	}
}

func TestEvaluateWindows(t *testing.T) {
	// Wednesday morning, well outside the 12-hour band for day-aligned dues.
	now := time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task models.Task
		want []Event
	}{
		{
			name: "no due date",
			task: models.Task{ID: 1, OwnerID: 10, Status: models.StatusPending},
			want: nil,
		},
		{
			name: "completed task is never evaluated",
			task: func() models.Task {
				tk := taskDue(date(2024, time.June, 11))
				tk.Status = models.StatusCompleted
				return tk
			}(),
			want: nil,
		},
		{
			name: "due yesterday is overdue",
			task: taskDue(date(2024, time.June, 11)),
			want: []Event{EventOverdue},
		},
		{
			name: "long overdue",
			task: taskDue(date(2024, time.May, 1)),
			want: []Event{EventOverdue},
		},
		{
			name: "due today is neither overdue nor a reminder",
			task: taskDue(date(2024, time.June, 12)),
			want: nil,
		},
		{
			name: "due in 7 days on a weekday",
			task: taskDue(date(2024, time.June, 19)), // Wednesday
			want: []Event{EventSevenDay},
		},
		{
			name: "due in 6 days fires nothing",
			task: taskDue(date(2024, time.June, 18)),
			want: nil,
		},
		{
			name: "due in 8 days fires nothing",
			task: taskDue(date(2024, time.June, 20)),
			want: nil,
		},
		{
			name: "due tomorrow on a weekday",
			task: taskDue(date(2024, time.June, 13)), // Thursday
			want: []Event{EventTwentyFourHour},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateWindows(now, tt.task))
		})
	}
}

func TestEvaluateWindowsIsPure(t *testing.T) {
	now := time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC)
	task := taskDue(date(2024, time.June, 19))

	first := EvaluateWindows(now, task)
	second := EvaluateWindows(now, task)
	assert.Equal(t, first, second)
}

func TestEvaluateWindowsWeekendShiftedTrigger(t *testing.T) {
	// The due date itself may sit on a weekend; only the trigger date is
	// shifted, never the due date. A trigger shifted onto Friday no longer
	// coincides with the day the 7-day gate matches, so weekend-landing
	// triggers produce no 7-day reminder at all. That mirrors the shipped
	// behavior exactly.
	saturday := time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)
	dueNextSaturday := taskDue(date(2024, time.June, 22))
	assert.Empty(t, EvaluateWindows(saturday, dueNextSaturday))

	// 24-hour window: due Sunday, evaluated on Saturday. Trigger shifts
	// Saturday -> Friday and no longer equals today.
	dueSunday := taskDue(date(2024, time.June, 16))
	assert.Empty(t, EvaluateWindows(saturday, dueSunday))

	// Due Monday, evaluated the previous Monday: trigger is a weekday,
	// no shift, fires normally.
	monday := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	dueNextMonday := taskDue(date(2024, time.June, 17))
	assert.Equal(t, []Event{EventSevenDay}, EvaluateWindows(monday, dueNextMonday))
}

func TestEvaluateWindowsTwelveHourBand(t *testing.T) {
	// The 12-hour check compares hours against now, not calendar days.
	// With a daily run cadence it only fires when the run lands inside the
	// (11, 12] band, a known gap kept as shipped.
	due := time.Date(2024, time.June, 12, 21, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want []Event
	}{
		{"exactly 12h before due", time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC), []Event{EventTwelveHour}},
		{"11h30m before due", time.Date(2024, time.June, 12, 9, 30, 0, 0, time.UTC), []Event{EventTwelveHour}},
		{"exactly 11h before due is outside the band", time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC), nil},
		{"12h01m before due is outside the band", time.Date(2024, time.June, 12, 8, 59, 0, 0, time.UTC), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateWindows(tt.now, taskDue(due)))
		})
	}
}

func TestEvaluateWindowsTwelveHourCoFires(t *testing.T) {
	// A day-aligned due date tomorrow puts midnight 11.5h away from a
	// 12:30 run: both the 24-hour and the 12-hour windows apply.
	now := time.Date(2024, time.June, 12, 12, 30, 0, 0, time.UTC)
	task := taskDue(date(2024, time.June, 13))

	assert.Equal(t, []Event{EventTwentyFourHour, EventTwelveHour}, EvaluateWindows(now, task))
}

func TestEvaluateWindowsOverdueShortCircuits(t *testing.T) {
	// An overdue task produces exactly the overdue event, never a
	// reminder, regardless of its stored time-of-day.
	now := time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC)
	due := time.Date(2024, time.June, 11, 21, 0, 0, 0, time.UTC)

	assert.Equal(t, []Event{EventOverdue}, EvaluateWindows(now, taskDue(due)))
}
