package employee

import "time"

type Employee struct {
	ID               string
	FullName         string
	Email            string
	BirthDate        *time.Time
	EmploymentStatus string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Employment statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
