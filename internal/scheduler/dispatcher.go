package scheduler

import (
	"context"
	"fmt"
	"log"

	"taskboard/internal/models"
)

// TaskSource loads the candidate tasks for a run: status not completed,
// due date set, owner/assignee ids resolved.
type TaskSource interface {
	OpenTasksWithDueDates(ctx context.Context) ([]models.Task, error)
}

// Notifier delivers one notification to one recipient. Errors are
// treated as per-recipient delivery failures, not run failures.
type Notifier interface {
	SendReminder(recipientID int64, task models.Task, event Event) error
	SendOverdue(recipientID int64, task models.Task) error
}

// Dispatcher runs the daily reminder batch. One run is strictly
// sequential; serializing runs against each other is a deployment
// concern of the cron trigger, the dispatcher holds no lock.
type Dispatcher struct {
	tasks    TaskSource
	notifier Notifier
	clock    Clock
}

func NewDispatcher(tasks TaskSource, notifier Notifier, clock Clock) *Dispatcher {
	return &Dispatcher{tasks: tasks, notifier: notifier, clock: clock}
}

// Run evaluates every open task with a due date and dispatches the
// events that apply today. The returned error is non-nil only when the
// task scan itself fails; delivery failures end up in the report.
// Running twice on the same day re-sends that day's notices: delivery
// is at-least-once per day, there is no persisted "already sent" marker.
func (d *Dispatcher) Run(ctx context.Context) (*RunReport, error) {
	report := &RunReport{}

	now := d.clock.Now()
	if IsWeekend(now) {
		log.Printf("[reminders][run] skipped: %s is a weekend, reminders go out on working days only", now.Format("2006-01-02"))
		return report, nil
	}

	tasks, err := d.tasks.OpenTasksWithDueDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan open tasks: %w", err)
	}
	log.Printf("[reminders][run] scanning %d open tasks with due dates", len(tasks))

	for _, task := range tasks {
		// the query should exclude these already
		if task.DueDate == nil {
			continue
		}
		for _, ev := range EvaluateWindows(now, task) {
			if ev == EventOverdue {
				d.dispatchOverdue(task, report)
				report.OverdueSent++
				continue
			}
			if d.dispatchReminder(task, ev, report) {
				report.RemindersSent++
			}
		}
	}

	log.Printf("[reminders][run] done: %s", report.Summary())
	return report, nil
}

// dispatchReminder notifies every recipient and reports true when at
// least one delivery succeeded.
func (d *Dispatcher) dispatchReminder(task models.Task, ev Event, report *RunReport) bool {
	sent := false
	for _, recipientID := range Recipients(task) {
		if err := d.notifier.SendReminder(recipientID, task, ev); err != nil {
			log.Printf("[reminders][send][err] task=%d recipient=%d event=%s: %v", task.ID, recipientID, ev, err)
			report.Failures = append(report.Failures, DispatchFailure{
				TaskID:      task.ID,
				RecipientID: recipientID,
				Event:       ev,
				Reason:      err.Error(),
			})
			continue
		}
		sent = true
	}
	return sent
}

func (d *Dispatcher) dispatchOverdue(task models.Task, report *RunReport) {
	for _, recipientID := range Recipients(task) {
		if err := d.notifier.SendOverdue(recipientID, task); err != nil {
			log.Printf("[reminders][overdue][err] task=%d recipient=%d: %v", task.ID, recipientID, err)
			report.Failures = append(report.Failures, DispatchFailure{
				TaskID:      task.ID,
				RecipientID: recipientID,
				Event:       EventOverdue,
				Reason:      err.Error(),
			})
		}
	}
}
