package stats

import (
	"context"
)

// StatsRepository defines data access for monthly aggregates.
type StatsRepository interface {
	// Get retrieves the aggregate row for (employee, month).
	// Returns (nil, nil) when no row exists.
	Get(ctx context.Context, employeeID, yearMonth string) (*MonthlyStats, error)

	// Upsert inserts or replaces the aggregate row for (employee, month).
	Upsert(ctx context.Context, s MonthlyStats) error

	// Delete removes the aggregate row for (employee, month).
	Delete(ctx context.Context, employeeID, yearMonth string) error
}
