package employee

import (
	"context"
)

// EmployeeService defines business logic for employee lookups.
type EmployeeService interface {
	// Resolve finds or creates the employee identity for a submission.
	Resolve(ctx context.Context, name, phone string) (Employee, error)

	// Search retrieves an employee by exact name and phone.
	Search(ctx context.Context, req SearchRequest) (EmployeeResponse, error)

	// SearchByName retrieves the first employee matching a name.
	SearchByName(ctx context.Context, req SearchByNameRequest) (EmployeeResponse, error)

	// List retrieves all employees ordered by name.
	List(ctx context.Context) ([]EmployeeResponse, error)
}
