package models

import (
	"encoding/json"
	"time"
)

// AuditAction values recorded for entity lifecycle changes.
const (
	AuditTaskCreated       = "task_created"
	AuditTaskUpdated       = "task_updated"
	AuditTaskStatusChanged = "task_status_changed"
	AuditTaskAssigned      = "task_assigned"
	AuditTaskDeleted       = "task_deleted"
	AuditCommentAdded      = "comment_added"
	AuditCommentDeleted    = "comment_deleted"
	AuditImageUploaded     = "image_uploaded"
)

// AuditLog records who changed what. Old/new values are stored as JSON
// snapshots of the changed fields.
type AuditLog struct {
	ID         int64           `json:"id"`
	UserID     *int64          `json:"user_id,omitempty"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   int64           `json:"entity_id"`
	OldValue   json.RawMessage `json:"old_value,omitempty"`
	NewValue   json.RawMessage `json:"new_value,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
