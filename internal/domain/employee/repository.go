package employee

import (
	"context"
	"time"
)

// EmployeeRepository defines data access for employees.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListBirthdaysInWindow returns active employees whose birthday
	// (month/day) falls within days calendar days of from, soonest first.
	ListBirthdaysInWindow(ctx context.Context, from time.Time, days int) ([]Employee, error)
}
