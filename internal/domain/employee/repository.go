package employee

import (
	"context"
)

// EmployeeRepository defines data access for employee identities.
type EmployeeRepository interface {
	// Upsert inserts the employee if no row exists for (name, phone), and
	// returns the existing row unchanged otherwise. This is the find-or-create
	// path every submission goes through.
	Upsert(ctx context.Context, emp Employee) (Employee, error)

	// GetByNameAndPhone retrieves an employee by the exact pair.
	// Returns ErrEmployeeNotFound when absent.
	GetByNameAndPhone(ctx context.Context, name, phone string) (Employee, error)

	// GetFirstByName retrieves the first employee matching the name.
	// Ambiguous when names collide; accepted limitation.
	GetFirstByName(ctx context.Context, name string) (Employee, error)

	// List retrieves all employees ordered by name ascending.
	List(ctx context.Context) ([]Employee, error)
}
