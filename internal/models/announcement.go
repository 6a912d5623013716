package models

import "time"

// AnnouncementPriority orders announcements on the dashboard.
type AnnouncementPriority string

const (
	AnnouncementPriorityLow    AnnouncementPriority = "LOW"
	AnnouncementPriorityNormal AnnouncementPriority = "NORMAL"
	AnnouncementPriorityHigh   AnnouncementPriority = "HIGH"
)

// Announcement represents a persisted announcement row.
type Announcement struct {
	ID        string               `db:"id" json:"id"`
	Title     string               `db:"title" json:"title"`
	Message   string               `db:"message" json:"message"`
	Priority  AnnouncementPriority `db:"priority" json:"priority"`
	Read      bool                 `db:"is_read" json:"read"`
	CreatedBy string               `db:"created_by" json:"created_by,omitempty"`
	CreatedAt time.Time            `db:"created_at" json:"created_at"`
	ReadAt    *time.Time           `db:"read_at" json:"read_at,omitempty"`
}
