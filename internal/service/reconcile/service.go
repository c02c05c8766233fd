package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hadirhq/hadir-backend-go/internal/domain/attendance"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/clock"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/timeutil"
)

// ReconcilerImpl closes stale open attendance sessions. A session is stale
// when it has no clock_out and its clock_in precedes the current UTC day; it
// is force-closed at 23:59:59 UTC of its own clock-in day. Sessions opened
// today are in progress and are never touched.
type ReconcilerImpl struct {
	attendanceRepo attendance.AttendanceRepository
	clock          clock.Clock
}

func NewReconciler(attendanceRepo attendance.AttendanceRepository, clk clock.Clock) attendance.Reconciler {
	return &ReconcilerImpl{
		attendanceRepo: attendanceRepo,
		clock:          clk,
	}
}

// Run implements attendance.Reconciler.
//
// "now" is read once per run. A failed scan aborts the run before any update.
// A failed per-record update is logged and skipped; the remaining candidates
// are still processed. This is deliberate: the job favors closing as many
// stale sessions as possible over strict error surfacing, and the caller sees
// the shortfall as Closed < Total. Do not change this to abort-on-first-error.
func (r *ReconcilerImpl) Run(ctx context.Context) (attendance.ReconciliationResult, error) {
	now := r.clock.Now()
	cutoff := timeutil.StartOfDayUTC(now)

	candidates, err := r.attendanceRepo.ListOpenBefore(ctx, cutoff)
	if err != nil {
		return attendance.ReconciliationResult{}, fmt.Errorf("reconciliation scan: %w", err)
	}

	result := attendance.ReconciliationResult{Total: len(candidates)}
	if len(candidates) == 0 {
		return result, nil
	}

	for _, candidate := range candidates {
		closeAt := timeutil.EndOfDayUTC(candidate.ClockIn)

		if err := r.attendanceRepo.SetClockOut(ctx, candidate.ID, closeAt, attendance.StatusAutoClosed); err != nil {
			slog.Error("failed to auto-close attendance, skipping",
				"attendance_id", candidate.ID,
				"close_at", closeAt,
				"error", err)
			continue
		}

		result.Closed++
	}

	slog.Info("attendance reconciliation finished",
		"closed", result.Closed,
		"total", result.Total,
		"cutoff", cutoff)

	return result, nil
}
