package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chulcheck/attendance-backend-go/internal/domain/employee"
	"github.com/chulcheck/attendance-backend-go/internal/domain/stats"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/clock"
)

// StatsJobs holds the periodic statistics maintenance work.
type StatsJobs struct {
	employeeRepo employee.EmployeeRepository
	statsService stats.StatsService
	clock        clock.Clock
}

func NewStatsJobs(
	employeeRepo employee.EmployeeRepository,
	statsService stats.StatsService,
	clock clock.Clock,
) *StatsJobs {
	return &StatsJobs{
		employeeRepo: employeeRepo,
		statsService: statsService,
		clock:        clock,
	}
}

func (j *StatsJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("recompute_current_month_stats", 6*time.Hour, j.RecomputeCurrentMonth)
}

// RecomputeCurrentMonth rebuilds the current month's aggregate for every
// employee. Concurrent check-out submissions fold into the stats row without
// row locking, so two racing folds can lose an update; the sweep bounds that
// drift by periodically rebuilding from the sessions table.
func (j *StatsJobs) RecomputeCurrentMonth(ctx context.Context) error {
	month := j.clock.Month()

	employees, err := j.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list employees for stats sweep: %w", err)
	}

	var failed int
	for _, emp := range employees {
		if err := j.statsService.Recompute(ctx, emp.ID, month); err != nil {
			failed++
			slog.Error("Cron: stats recompute failed", "employee_id", emp.ID, "month", month, "error", err)
		}
	}

	slog.Info("Cron: stats sweep finished", "month", month, "employees", len(employees), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("stats sweep: %d of %d employees failed", failed, len(employees))
	}
	return nil
}
