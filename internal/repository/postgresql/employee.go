package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hadirhq/hadir-backend-go/internal/domain/employee"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, birth_date, employment_status, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.FullName, &e.Email, &e.BirthDate, &e.EmploymentStatus, &e.CreatedAt, &e.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return e, nil
}

// ListBirthdaysInWindow implements employee.EmployeeRepository.
// The day-of-year comparison wraps across the year end so a late-December
// window still picks up early-January birthdays.
func (r *employeeRepository) ListBirthdaysInWindow(ctx context.Context, from time.Time, days int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, birth_date, employment_status, created_at, updated_at
		FROM employees
		WHERE employment_status = 'active'
		  AND birth_date IS NOT NULL
		  AND (
			(EXTRACT(DOY FROM birth_date)::int - EXTRACT(DOY FROM $1::date)::int + 366) % 366
		  ) <= $2
		ORDER BY (EXTRACT(DOY FROM birth_date)::int - EXTRACT(DOY FROM $1::date)::int + 366) % 366
	`

	rows, err := q.Query(ctx, query, from, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming birthdays: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(&e.ID, &e.FullName, &e.Email, &e.BirthDate, &e.EmploymentStatus, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}
