package attendance

import (
	"context"
)

// AttendanceService defines read-side business logic for attendance.
type AttendanceService interface {
	// ListAttendance retrieves attendance records with filters (admin/HR)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)
}

// Reconciler runs the daily attendance-closing job: scan open sessions that
// started before today (UTC), force-close each at 23:59:59 UTC of its own
// clock-in day, and report counts. Safe to re-run: closed sessions are never
// re-selected.
type Reconciler interface {
	Run(ctx context.Context) (ReconciliationResult, error)
}
