package announcement

import (
	"context"
)

// Service defines business logic for announcements.
type Service interface {
	// Create publishes or schedules a new announcement (admin/HR)
	Create(ctx context.Context, req CreateAnnouncementRequest) (AnnouncementResponse, error)

	// Get retrieves a single announcement by ID
	Get(ctx context.Context, id string) (AnnouncementResponse, error)

	// ListPublished returns currently visible announcements, newest first
	ListPublished(ctx context.Context, limit int) ([]AnnouncementResponse, error)

	// Update edits an existing announcement (admin/HR)
	Update(ctx context.Context, req UpdateAnnouncementRequest) (AnnouncementResponse, error)

	// Delete removes an announcement (admin/HR)
	Delete(ctx context.Context, id string) error
}
