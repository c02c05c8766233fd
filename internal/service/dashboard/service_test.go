package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/hadirhq/hadir-backend-go/internal/domain/employee"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListBirthdaysInWindow(ctx context.Context, from time.Time, days int) ([]employee.Employee, error) {
	return f.employees, nil
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestUpcomingBirthdays_NextOccurrenceThisYear(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", FullName: "Ayu", BirthDate: datePtr(1995, time.March, 14)},
	}}
	now := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)

	svc := NewDashboardService(repo, clock.Fixed(now))
	got, err := svc.UpcomingBirthdays(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 7, got.Days)
	require.Len(t, got.Birthdays, 1)
	assert.Equal(t, "1995-03-14", got.Birthdays[0].BirthDate)
	assert.Equal(t, "2024-03-14", got.Birthdays[0].Upcoming)
}

func TestUpcomingBirthdays_WrapsToNextYear(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", FullName: "Budi", BirthDate: datePtr(1990, time.January, 2)},
	}}
	now := time.Date(2024, 12, 30, 9, 0, 0, 0, time.UTC)

	svc := NewDashboardService(repo, clock.Fixed(now))
	got, err := svc.UpcomingBirthdays(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, got.Birthdays, 1)
	assert.Equal(t, "2025-01-02", got.Birthdays[0].Upcoming)
}

func TestUpcomingBirthdays_DefaultWindow(t *testing.T) {
	svc := NewDashboardService(&fakeEmployeeRepo{}, clock.Fixed(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)))
	got, err := svc.UpcomingBirthdays(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 7, got.Days)
	assert.Empty(t, got.Birthdays)
}
