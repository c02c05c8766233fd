package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/hadirhq/hadir-backend-go/internal/domain/dashboard"
	"github.com/hadirhq/hadir-backend-go/internal/domain/employee"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/clock"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/timeutil"
)

type DashboardServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
}

func NewDashboardService(employeeRepo employee.EmployeeRepository, clk clock.Clock) dashboard.Service {
	return &DashboardServiceImpl{
		employeeRepo: employeeRepo,
		clock:        clk,
	}
}

// UpcomingBirthdays implements dashboard.Service.
func (s *DashboardServiceImpl) UpcomingBirthdays(ctx context.Context, days int) (dashboard.BirthdayRemindersResponse, error) {
	if days <= 0 {
		days = 7
	}

	today := timeutil.StartOfDayUTC(s.clock.Now())

	employees, err := s.employeeRepo.ListBirthdaysInWindow(ctx, today, days)
	if err != nil {
		return dashboard.BirthdayRemindersResponse{}, fmt.Errorf("failed to list upcoming birthdays: %w", err)
	}

	reminders := make([]dashboard.BirthdayReminder, 0, len(employees))
	for _, emp := range employees {
		if emp.BirthDate == nil {
			continue
		}
		reminders = append(reminders, dashboard.BirthdayReminder{
			EmployeeID: emp.ID,
			FullName:   emp.FullName,
			BirthDate:  emp.BirthDate.Format("2006-01-02"),
			Upcoming:   nextOccurrence(*emp.BirthDate, today).Format("2006-01-02"),
		})
	}

	return dashboard.BirthdayRemindersResponse{
		Days:      days,
		Birthdays: reminders,
	}, nil
}

// nextOccurrence returns the next anniversary of birthDate at or after from.
// Feb 29 birthdays land on Mar 1 in non-leap years.
func nextOccurrence(birthDate, from time.Time) time.Time {
	next := time.Date(from.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(from) {
		next = time.Date(from.Year()+1, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	}
	return next
}
