package dashboard

import "context"

// Service provides dashboard widgets that are not owned by a richer domain.
type Service interface {
	// UpcomingBirthdays lists active employees with a birthday within the
	// next days calendar days.
	UpcomingBirthdays(ctx context.Context, days int) (BirthdayRemindersResponse, error)
}
