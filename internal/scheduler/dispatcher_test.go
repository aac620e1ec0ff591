package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/models"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fakeTaskSource struct {
	tasks  []models.Task
	err    error
	called bool
}

func (s *fakeTaskSource) OpenTasksWithDueDates(_ context.Context) ([]models.Task, error) {
	s.called = true
	return s.tasks, s.err
}

type sentNotice struct {
	recipientID int64
	taskID      int64
	event       Event
}

type fakeNotifier struct {
	sent []sentNotice
	// fail marks (recipient, event) pairs whose delivery should error
	fail map[int64]Event
}

func (n *fakeNotifier) failFor(recipientID int64, ev Event) {
	if n.fail == nil {
		n.fail = map[int64]Event{}
	}
	n.fail[recipientID] = ev
}

func (n *fakeNotifier) SendReminder(recipientID int64, task models.Task, event Event) error {
	if ev, ok := n.fail[recipientID]; ok && ev == event {
		return errors.New("smtp: connection refused")
	}
	n.sent = append(n.sent, sentNotice{recipientID, task.ID, event})
	return nil
}

func (n *fakeNotifier) SendOverdue(recipientID int64, task models.Task) error {
	if ev, ok := n.fail[recipientID]; ok && ev == EventOverdue {
		return errors.New("smtp: connection refused")
	}
	n.sent = append(n.sent, sentNotice{recipientID, task.ID, EventOverdue})
	return nil
}

func newDispatcher(tasks *fakeTaskSource, notifier *fakeNotifier, now time.Time) *Dispatcher {
	return NewDispatcher(tasks, notifier, fixedClock{now})
}

func TestRunSkipsWeekends(t *testing.T) {
	saturday := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	source := &fakeTaskSource{tasks: []models.Task{taskDue(date(2024, time.June, 14))}}
	notifier := &fakeNotifier{}

	report, err := newDispatcher(source, notifier, saturday).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.RemindersSent)
	assert.Equal(t, 0, report.OverdueSent)
	assert.Empty(t, report.Failures)
	assert.False(t, source.called, "weekend run must not scan tasks")
	assert.Empty(t, notifier.sent)
}

func TestRunFatalScanError(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)
	source := &fakeTaskSource{err: errors.New("connection reset")}

	report, err := newDispatcher(source, &fakeNotifier{}, now).Run(context.Background())

	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorContains(t, err, "scan open tasks")
}

func TestRunEndToEnd(t *testing.T) {
	// Wednesday 2024-06-12 09:00.
	now := time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC)
	u1, u2 := int64(1), int64(2)

	dueA := date(2024, time.June, 19) // +7 days
	dueB := date(2024, time.June, 11) // yesterday
	dueC := time.Date(2024, time.June, 12, 21, 0, 0, 0, time.UTC)

	source := &fakeTaskSource{tasks: []models.Task{
		{ID: 100, OwnerID: u1, AssigneeID: &u2, Status: models.StatusPending, DueDate: &dueA},
		{ID: 200, OwnerID: u1, Status: models.StatusPending, DueDate: &dueB},
		{ID: 300, OwnerID: u1, Status: models.StatusPending, DueDate: &dueC},
	}}
	notifier := &fakeNotifier{}

	report, err := newDispatcher(source, notifier, now).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, report.RemindersSent, "task A seven-day plus task C twelve-hour")
	assert.Equal(t, 1, report.OverdueSent)
	assert.Empty(t, report.Failures)
	assert.Equal(t, []sentNotice{
		{u1, 100, EventSevenDay},
		{u2, 100, EventSevenDay},
		{u1, 200, EventOverdue},
		{u1, 300, EventTwelveHour},
	}, notifier.sent)
}

func TestRunDeduplicatesSelfAssignedRecipients(t *testing.T) {
	now := time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC)
	owner := int64(7)
	due := date(2024, time.June, 19)

	source := &fakeTaskSource{tasks: []models.Task{
		{ID: 1, OwnerID: owner, AssigneeID: &owner, Status: models.StatusPending, DueDate: &due},
	}}
	notifier := &fakeNotifier{}

	report, err := newDispatcher(source, notifier, now).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.RemindersSent)
	assert.Len(t, notifier.sent, 1, "owner==assignee gets exactly one notice per event")
}

func TestRunIsolatesDeliveryFailures(t *testing.T) {
	now := time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC)
	u1, u2 := int64(1), int64(2)
	dueA := date(2024, time.June, 19)
	dueB := date(2024, time.June, 13)

	source := &fakeTaskSource{tasks: []models.Task{
		{ID: 100, OwnerID: u1, AssigneeID: &u2, Status: models.StatusPending, DueDate: &dueA},
		{ID: 200, OwnerID: u1, Status: models.StatusPending, DueDate: &dueB},
	}}
	notifier := &fakeNotifier{}
	notifier.failFor(u1, EventSevenDay)

	report, err := newDispatcher(source, notifier, now).Run(context.Background())

	require.NoError(t, err, "delivery failures never fail the run")
	// task 100 still counts: u2 succeeded
	assert.Equal(t, 2, report.RemindersSent)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, DispatchFailure{
		TaskID:      100,
		RecipientID: u1,
		Event:       EventSevenDay,
		Reason:      "smtp: connection refused",
	}, report.Failures[0])
	// remaining recipients and tasks were still dispatched
	assert.Equal(t, []sentNotice{
		{u2, 100, EventSevenDay},
		{u1, 200, EventTwentyFourHour},
	}, notifier.sent)
}

func TestRunReminderNotCountedWhenAllRecipientsFail(t *testing.T) {
	now := time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC)
	owner := int64(1)
	due := date(2024, time.June, 19)

	source := &fakeTaskSource{tasks: []models.Task{
		{ID: 1, OwnerID: owner, Status: models.StatusPending, DueDate: &due},
	}}
	notifier := &fakeNotifier{}
	notifier.failFor(owner, EventSevenDay)

	report, err := newDispatcher(source, notifier, now).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.RemindersSent)
	assert.Len(t, report.Failures, 1)
}

func TestRunCountsOverduePerTaskEvenOnFailure(t *testing.T) {
	now := time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC)
	owner := int64(1)
	due := date(2024, time.June, 10)

	source := &fakeTaskSource{tasks: []models.Task{
		{ID: 1, OwnerID: owner, Status: models.StatusPending, DueDate: &due},
	}}
	notifier := &fakeNotifier{}
	notifier.failFor(owner, EventOverdue)

	report, err := newDispatcher(source, notifier, now).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.OverdueSent, "overdue notices count per task, not per delivery")
	assert.Len(t, report.Failures, 1)
}

func TestRunSkipsTasksWithoutDueDateDefensively(t *testing.T) {
	now := time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC)
	source := &fakeTaskSource{tasks: []models.Task{
		{ID: 1, OwnerID: 1, Status: models.StatusPending},
	}}
	notifier := &fakeNotifier{}

	report, err := newDispatcher(source, notifier, now).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.RemindersSent)
	assert.Empty(t, notifier.sent)
}

func TestRunReportSummary(t *testing.T) {
	r := &RunReport{RemindersSent: 3, OverdueSent: 1, Failures: []DispatchFailure{{TaskID: 1}}}
	assert.Equal(t, "Sent 3 reminders and 1 overdue notifications (1 delivery failures).", r.Summary())
}
