package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/chulcheck/attendance-backend-go/internal/domain/stats"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type statsRepository struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) stats.StatsRepository {
	return &statsRepository{db: db}
}

// Get implements stats.StatsRepository.
func (r *statsRepository) Get(ctx context.Context, employeeID, yearMonth string) (*stats.MonthlyStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year_month, total_days, total_hours, total_minutes, total_wage, updated_at
		FROM monthly_stats
		WHERE employee_id = $1 AND year_month = $2
	`

	var s stats.MonthlyStats
	err := q.QueryRow(ctx, query, employeeID, yearMonth).Scan(
		&s.ID, &s.EmployeeID, &s.YearMonth,
		&s.TotalDays, &s.TotalHours, &s.TotalMinutes, &s.TotalWage,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no aggregate for this month yet
		}
		return nil, fmt.Errorf("failed to get monthly stats: %w", err)
	}

	return &s, nil
}

// Upsert implements stats.StatsRepository.
func (r *statsRepository) Upsert(ctx context.Context, s stats.MonthlyStats) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_stats (id, employee_id, year_month, total_days, total_hours, total_minutes, total_wage, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (employee_id, year_month) DO UPDATE SET
			total_days    = EXCLUDED.total_days,
			total_hours   = EXCLUDED.total_hours,
			total_minutes = EXCLUDED.total_minutes,
			total_wage    = EXCLUDED.total_wage,
			updated_at    = NOW()
	`

	if _, err := q.Exec(ctx, query,
		uuid.NewString(), s.EmployeeID, s.YearMonth,
		s.TotalDays, s.TotalHours, s.TotalMinutes, s.TotalWage,
	); err != nil {
		return fmt.Errorf("failed to upsert monthly stats: %w", err)
	}

	return nil
}

// Delete implements stats.StatsRepository.
func (r *statsRepository) Delete(ctx context.Context, employeeID, yearMonth string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM monthly_stats
		WHERE employee_id = $1 AND year_month = $2
	`

	if _, err := q.Exec(ctx, query, employeeID, yearMonth); err != nil {
		return fmt.Errorf("failed to delete monthly stats: %w", err)
	}

	return nil
}
