package announcement

import "errors"

// Announcement domain errors
var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
)
