package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/chulcheck/attendance-backend-go/internal/domain/employee"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Upsert implements employee.EmployeeRepository.
func (r *employeeRepository) Upsert(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	// The no-op DO UPDATE makes RETURNING cover the conflict path while
	// leaving the stored fields (including hourly_rate) untouched.
	query := `
		INSERT INTO employees (id, name, phone, hourly_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (name, phone) DO UPDATE SET name = employees.name
		RETURNING id, name, phone, hourly_rate, created_at, updated_at
	`

	var result employee.Employee
	err := q.QueryRow(ctx, query, uuid.NewString(), emp.Name, emp.Phone, emp.HourlyRate).Scan(
		&result.ID, &result.Name, &result.Phone, &result.HourlyRate,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to upsert employee: %w", err)
	}

	return result, nil
}

// GetByNameAndPhone implements employee.EmployeeRepository.
func (r *employeeRepository) GetByNameAndPhone(ctx context.Context, name, phone string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, hourly_rate, created_at, updated_at
		FROM employees
		WHERE name = $1 AND phone = $2
		LIMIT 1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, name, phone).Scan(
		&emp.ID, &emp.Name, &emp.Phone, &emp.HourlyRate,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by name and phone: %w", err)
	}

	return emp, nil
}

// GetFirstByName implements employee.EmployeeRepository.
func (r *employeeRepository) GetFirstByName(ctx context.Context, name string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, hourly_rate, created_at, updated_at
		FROM employees
		WHERE name = $1
		ORDER BY created_at ASC
		LIMIT 1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, name).Scan(
		&emp.ID, &emp.Name, &emp.Phone, &emp.HourlyRate,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by name: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, hourly_rate, created_at, updated_at
		FROM employees
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Phone, &emp.HourlyRate,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
