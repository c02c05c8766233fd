package dashboard

type BirthdayReminder struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	BirthDate  string `json:"birth_date"` // YYYY-MM-DD
	Upcoming   string `json:"upcoming"`   // next occurrence, YYYY-MM-DD
}

type BirthdayRemindersResponse struct {
	Days      int                `json:"days"`
	Birthdays []BirthdayReminder `json:"birthdays"`
}
