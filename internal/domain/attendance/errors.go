package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrScanFailed wraps a failed open-session scan. It is terminal for a
	// reconciliation run: without a complete candidate set no update is safe.
	ErrScanFailed = errors.New("failed to scan open attendance sessions")
)
