package scheduler

// Event identifies which reminder window (or the overdue notice) fired
// for a task in a given run. The set is fixed; unknown values are still
// deliverable, the mailer falls back to a generic reminder line.
type Event string

const (
	EventSevenDay       Event = "7_days"
	EventTwentyFourHour Event = "24_hours"
	EventTwelveHour     Event = "12_hours"
	EventOverdue        Event = "overdue"
)

// Line returns the human sentence for the event, used as the lead line
// of the notification body.
func (e Event) Line() string {
	switch e {
	case EventSevenDay:
		return "This task is due in 7 days."
	case EventTwentyFourHour:
		return "This task is due in 24 hours."
	case EventTwelveHour:
		return "This task is due in 12 hours."
	case EventOverdue:
		return "This task is overdue!"
	default:
		return "This is a reminder for your task."
	}
}
