package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hadirhq/hadir-backend-go/internal/domain/attendance"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/clock"
)

// AttendanceJobs drives the nightly attendance close-out from inside the
// process. The same reconciler also sits behind the HTTP cron trigger, so an
// external scheduler can replace or double this ticker without a behavior
// change (the run is idempotent).
type AttendanceJobs struct {
	reconciler attendance.Reconciler
	clock      clock.Clock
}

func NewAttendanceJobs(reconciler attendance.Reconciler, clk clock.Clock) *AttendanceJobs {
	return &AttendanceJobs{
		reconciler: reconciler,
		clock:      clk,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("auto_clockout", interval, j.AutoClockOut)
}

func (j *AttendanceJobs) AutoClockOut(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC); the ticker fires hourly.
	if j.clock.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting auto-clockout job")

	result, err := j.reconciler.Run(ctx)
	if err != nil {
		return fmt.Errorf("auto-clockout run: %w", err)
	}

	if result.Total == 0 {
		slog.Info("Cron: No open logs to close")
		return nil
	}

	slog.Info("Cron: Auto-clockout finished", "closed", result.Closed, "total", result.Total)
	return nil
}
