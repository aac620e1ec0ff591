// internal/models/task.go
package models

import "time"

// TaskStatus defines the possible statuses for a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task represents the structure of a task in the system.
// OwnerID is the user who created the task; AssigneeID is optional and
// may point at the same user as OwnerID.
type Task struct {
	ID          int64        `json:"id"`
	ProjectID   int64        `json:"project_id"`
	OwnerID     int64        `json:"owner_id"`
	AssigneeID  *int64       `json:"assigned_user_id,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	Status      TaskStatus   `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Open reports whether the task still counts for reminders and dashboards.
func (t *Task) Open() bool {
	return t.Status != StatusCompleted
}

// TaskFilter defines the available parameters for filtering tasks.
type TaskFilter struct {
	ProjectID  *int64
	OwnerID    *int64
	AssigneeID *int64
	Status     *TaskStatus
	Priority   *TaskPriority
}
