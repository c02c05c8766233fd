package announcement

import (
	"context"
	"time"
)

// AnnouncementRepository defines data access for announcements.
type AnnouncementRepository interface {
	// Create inserts a new announcement
	Create(ctx context.Context, a Announcement) (Announcement, error)

	// GetByID retrieves an announcement by ID
	GetByID(ctx context.Context, id string) (Announcement, error)

	// ListPublished returns announcements whose publish_at is at or before
	// now, newest first
	ListPublished(ctx context.Context, now time.Time, limit int) ([]Announcement, error)

	// Update updates title/body/publish_at of an existing announcement
	Update(ctx context.Context, a Announcement) error

	// Delete removes an announcement
	Delete(ctx context.Context, id string) error
}
