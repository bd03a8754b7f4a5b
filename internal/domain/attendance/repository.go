package attendance

import (
	"context"
)

// EventRepository defines data access for the append-only attendance log.
type EventRepository interface {
	// Append stores one submission event.
	Append(ctx context.Context, event Event) (Event, error)

	// GetLatestIn retrieves the most recent IN event for an employee on a
	// civil date. Returns (nil, nil) when the employee has no IN that day.
	GetLatestIn(ctx context.Context, employeeID, ymd string) (*Event, error)

	// ListByDate retrieves all events for a civil date ordered by timestamp
	// ascending, joined with employee name and phone.
	ListByDate(ctx context.Context, ymd string, limit int) ([]Event, error)

	// DeleteByEmployeeAndDate removes all events for an employee on a date.
	DeleteByEmployeeAndDate(ctx context.Context, employeeID, ymd string) error
}

// SessionRepository defines data access for reconciled work sessions.
type SessionRepository interface {
	// Create stores a reconciled session.
	Create(ctx context.Context, session Session) (Session, error)

	// ListByEmployeeAndMonth retrieves all sessions for an employee in a
	// YYYY-MM month, ordered by date ascending.
	ListByEmployeeAndMonth(ctx context.Context, employeeID, yearMonth string) ([]Session, error)

	// DeleteByEmployeeAndDate removes all sessions for an employee on a date.
	DeleteByEmployeeAndDate(ctx context.Context, employeeID, ymd string) error
}
