package announcement

import "time"

type Announcement struct {
	ID        string
	Title     string
	Body      string
	PublishAt time.Time
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
