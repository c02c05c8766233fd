package attendance

import (
	"time"
)

// Attendance is one work session. ClockIn is set exactly once at check-in and
// never changes. ClockOut is nil while the session is open; it is written
// exactly once, either by the employee's clock-out or by the nightly
// reconciliation job. When present, ClockOut >= ClockIn.
type Attendance struct {
	ID         string
	EmployeeID string
	ClockIn    time.Time
	ClockOut   *time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for list views
	EmployeeName *string
}

// Attendance statuses.
const (
	StatusPresent    = "present"
	StatusAutoClosed = "auto_closed"
)

// OpenSession is the scanner's view of a candidate record: just enough to
// compute its forced close-out instant.
type OpenSession struct {
	ID      string
	ClockIn time.Time
}
