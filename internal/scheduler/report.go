package scheduler

import "fmt"

// DispatchFailure records one failed delivery attempt. Failures never
// abort a run; they are surfaced only as data.
type DispatchFailure struct {
	TaskID      int64  `json:"task_id"`
	RecipientID int64  `json:"recipient_id"`
	Event       Event  `json:"event"`
	Reason      string `json:"reason"`
}

// RunReport is the outcome of one scheduler run. It is created fresh per
// run and never persisted by the scheduler itself.
type RunReport struct {
	RemindersSent int               `json:"reminders_sent"`
	OverdueSent   int               `json:"overdue_sent"`
	Failures      []DispatchFailure `json:"failures,omitempty"`
}

// Summary renders the one-line result printed by the reminder job.
func (r *RunReport) Summary() string {
	return fmt.Sprintf("Sent %d reminders and %d overdue notifications (%d delivery failures).",
		r.RemindersSent, r.OverdueSent, len(r.Failures))
}
