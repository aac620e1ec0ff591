package models

import "time"

// Comment is attached to a task by any user who can see the task.
// Images holds the attached uploads; it is loaded alongside the comment,
// not stored in the comments table.
type Comment struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"task_id"`
	UserID    int64     `json:"user_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`

	Images []Image `json:"images,omitempty"`
}
