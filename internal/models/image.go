package models

import "time"

// ImageParent tells which entity an uploaded image belongs to.
type ImageParent string

const (
	ImageParentTask    ImageParent = "task"
	ImageParentComment ImageParent = "comment"
)

// Image is the stored metadata of an uploaded attachment. The file itself
// lives under the files root from the config.
type Image struct {
	ID           int64       `json:"id"`
	ParentType   ImageParent `json:"parent_type"`
	ParentID     int64       `json:"parent_id"`
	Path         string      `json:"path"`
	OriginalName string      `json:"original_name"`
	MimeType     string      `json:"mime_type"`
	Size         int64       `json:"size"`
	CreatedAt    time.Time   `json:"created_at"`
}
