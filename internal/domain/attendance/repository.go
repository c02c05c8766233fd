package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves a single attendance record
	GetByID(ctx context.Context, id string) (Attendance, error)

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListOpenBefore returns every open session (clock_out IS NULL) whose
	// clock_in precedes cutoff. Order carries no meaning. A session that
	// already has a clock_out is never returned, however old its clock_in.
	ListOpenBefore(ctx context.Context, cutoff time.Time) ([]OpenSession, error)

	// SetClockOut closes one session by id. Last-writer-wins: no
	// concurrency token is checked.
	SetClockOut(ctx context.Context, id string, clockOut time.Time, status string) error
}
