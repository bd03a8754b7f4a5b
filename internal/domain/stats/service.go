package stats

import (
	"context"

	"github.com/chulcheck/attendance-backend-go/internal/domain/attendance"
)

// StatsService owns the monthly aggregates. Fold and Recompute are the only
// two write paths: fold on session creation, recompute after deletions.
type StatsService interface {
	// Fold adds one newly created session to its month's aggregate, creating
	// the row if this is the month's first session. billedHours is the
	// rounded figure wages were computed from.
	Fold(ctx context.Context, session attendance.Session, billedHours int) error

	// Recompute rebuilds the aggregate from all remaining sessions in the
	// month. Deletes the row when no sessions remain.
	Recompute(ctx context.Context, employeeID, yearMonth string) error

	// GetMonthly returns the stored totals plus a day-by-day breakdown.
	GetMonthly(ctx context.Context, employeeID, yearMonth string) (StatsResponse, error)
}
