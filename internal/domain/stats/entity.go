package stats

import (
	"time"
)

// MonthlyStats is the per-employee per-month aggregate. Unique on
// (employee_id, year_month). Only the statistics service writes it.
type MonthlyStats struct {
	ID         string
	EmployeeID string
	YearMonth  string
	TotalDays  int
	// TotalHours is the sum of per-session billed hours on the incremental
	// path, but floor(total_minutes/60) after a recompute. The two can
	// disagree when sessions straddle rounding boundaries; preserved for
	// compatibility with the original aggregates.
	TotalHours   int
	TotalMinutes int
	TotalWage    int
	UpdatedAt    time.Time
}
