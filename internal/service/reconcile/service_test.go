package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hadirhq/hadir-backend-go/internal/domain/attendance"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendanceRepo is an in-memory stand-in for the postgres repository.
// It applies the same candidate predicate (open AND started before cutoff)
// and records every call so tests can assert on call counts.
type fakeAttendanceRepo struct {
	sessions map[string]*attendance.Attendance

	scanErr        error
	failUpdateFor  map[string]error
	scanCalls      int
	updateCalls    int
	updateAttempts []string
}

func newFakeRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		sessions:      make(map[string]*attendance.Attendance),
		failUpdateFor: make(map[string]error),
	}
}

func (f *fakeAttendanceRepo) add(id string, clockIn time.Time, clockOut *time.Time) {
	f.sessions[id] = &attendance.Attendance{
		ID:      id,
		ClockIn: clockIn,
		ClockOut: func() *time.Time {
			if clockOut == nil {
				return nil
			}
			t := *clockOut
			return &t
		}(),
		Status: attendance.StatusPresent,
	}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	panic("not used in reconciliation tests")
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	s, ok := f.sessions[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return *s, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	panic("not used in reconciliation tests")
}

func (f *fakeAttendanceRepo) ListOpenBefore(ctx context.Context, cutoff time.Time) ([]attendance.OpenSession, error) {
	f.scanCalls++
	if f.scanErr != nil {
		return nil, f.scanErr
	}

	var out []attendance.OpenSession
	for _, s := range f.sessions {
		if s.ClockOut == nil && s.ClockIn.Before(cutoff) {
			out = append(out, attendance.OpenSession{ID: s.ID, ClockIn: s.ClockIn})
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) SetClockOut(ctx context.Context, id string, clockOut time.Time, status string) error {
	f.updateCalls++
	f.updateAttempts = append(f.updateAttempts, id)

	if err, ok := f.failUpdateFor[id]; ok {
		return err
	}

	s, ok := f.sessions[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	s.ClockOut = &clockOut
	if status != "" {
		s.Status = status
	}
	return nil
}

var testNow = time.Date(2024, 3, 11, 0, 5, 0, 0, time.UTC)

func TestReconciler_StalenessPredicate(t *testing.T) {
	repo := newFakeRepo()
	// Open since yesterday morning: stale.
	repo.add("stale", time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), nil)
	// Opened a minute after midnight today: in progress, must not be closed.
	repo.add("today", time.Date(2024, 3, 11, 0, 1, 0, 0, time.UTC), nil)

	r := NewReconciler(repo, clock.Fixed(testNow))
	result, err := r.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, attendance.ReconciliationResult{Closed: 1, Total: 1}, result)
	assert.Equal(t, []string{"stale"}, repo.updateAttempts)

	today, err := repo.GetByID(context.Background(), "today")
	require.NoError(t, err)
	assert.Nil(t, today.ClockOut)
}

func TestReconciler_AlreadyClosedExcluded(t *testing.T) {
	repo := newFakeRepo()
	closedAt := time.Date(2024, 1, 5, 17, 0, 0, 0, time.UTC)
	// Very old but already closed: never a candidate.
	repo.add("closed", time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC), &closedAt)

	r := NewReconciler(repo, clock.Fixed(testNow))
	result, err := r.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, attendance.ReconciliationResult{Closed: 0, Total: 0}, result)
	assert.Zero(t, repo.updateCalls)
}

func TestReconciler_EmptySetShortCircuit(t *testing.T) {
	repo := newFakeRepo()

	r := NewReconciler(repo, clock.Fixed(testNow))
	result, err := r.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, attendance.ReconciliationResult{Closed: 0, Total: 0}, result)
	assert.Equal(t, 1, repo.scanCalls)
	assert.Zero(t, repo.updateCalls, "no update call may be issued for an empty candidate set")
}

func TestReconciler_PartialFailureIsolation(t *testing.T) {
	repo := newFakeRepo()
	repo.add("a", time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC), nil)
	repo.add("b", time.Date(2024, 3, 9, 9, 0, 0, 0, time.UTC), nil)
	repo.add("c", time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), nil)
	repo.failUpdateFor["b"] = errors.New("connection reset")

	r := NewReconciler(repo, clock.Fixed(testNow))
	result, err := r.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, attendance.ReconciliationResult{Closed: 2, Total: 3}, result)
	// Ordering-independent: all three candidates must be attempted.
	assert.Equal(t, 3, repo.updateCalls)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, repo.updateAttempts)

	b, err := repo.GetByID(context.Background(), "b")
	require.NoError(t, err)
	assert.Nil(t, b.ClockOut, "failed update must not be retried within the run")
}

func TestReconciler_ScanFailureIsTerminal(t *testing.T) {
	repo := newFakeRepo()
	repo.add("stale", time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), nil)
	repo.scanErr = attendance.ErrScanFailed

	r := NewReconciler(repo, clock.Fixed(testNow))
	_, err := r.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, attendance.ErrScanFailed)
	assert.Zero(t, repo.updateCalls, "no update may be attempted after a failed scan")
}

func TestReconciler_ClosesAtEndOfClockInDay(t *testing.T) {
	repo := newFakeRepo()
	clockIn := time.Date(2024, 3, 10, 8, 15, 0, 0, time.UTC)
	repo.add("stale", clockIn, nil)

	r := NewReconciler(repo, clock.Fixed(testNow))
	_, err := r.Run(context.Background())
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), "stale")
	require.NoError(t, err)
	require.NotNil(t, got.ClockOut)

	// Round-trip: the stored instant is exactly 23:59:59 UTC of the
	// clock-in day, with no precision loss.
	want := time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC)
	assert.True(t, want.Equal(*got.ClockOut), "want %s, got %s", want, got.ClockOut)
	assert.True(t, !got.ClockOut.Before(got.ClockIn), "clock_out must not precede clock_in")
	assert.Equal(t, attendance.StatusAutoClosed, got.Status)
}

func TestReconciler_MultiDayStaleSessionsEachCloseOnOwnDay(t *testing.T) {
	repo := newFakeRepo()
	repo.add("mar08", time.Date(2024, 3, 8, 22, 0, 0, 0, time.UTC), nil)
	repo.add("mar09", time.Date(2024, 3, 9, 6, 30, 0, 0, time.UTC), nil)

	r := NewReconciler(repo, clock.Fixed(testNow))
	result, err := r.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, attendance.ReconciliationResult{Closed: 2, Total: 2}, result)

	for id, wantDay := range map[string]time.Time{
		"mar08": time.Date(2024, 3, 8, 23, 59, 59, 0, time.UTC),
		"mar09": time.Date(2024, 3, 9, 23, 59, 59, 0, time.UTC),
	} {
		got, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, got.ClockOut)
		assert.True(t, wantDay.Equal(*got.ClockOut), "%s: want %s, got %s", id, wantDay, got.ClockOut)
	}
}

func TestReconciler_RerunIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.add("stale", time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), nil)

	r := NewReconciler(repo, clock.Fixed(testNow))

	first, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, attendance.ReconciliationResult{Closed: 1, Total: 1}, first)

	// The session is closed now, so the second run finds nothing.
	second, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, attendance.ReconciliationResult{Closed: 0, Total: 0}, second)
	assert.Equal(t, 1, repo.updateCalls)
}
