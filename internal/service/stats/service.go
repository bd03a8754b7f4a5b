package stats

import (
	"context"
	"fmt"

	"github.com/chulcheck/attendance-backend-go/internal/domain/attendance"
	"github.com/chulcheck/attendance-backend-go/internal/domain/stats"
)

type StatsServiceImpl struct {
	stats.StatsRepository
	attendance.SessionRepository
}

func NewStatsService(
	statsRepo stats.StatsRepository,
	sessionRepo attendance.SessionRepository,
) stats.StatsService {
	return &StatsServiceImpl{
		StatsRepository:   statsRepo,
		SessionRepository: sessionRepo,
	}
}

// Fold implements stats.StatsService.
//
// Read-modify-write without row locking: two concurrent folds for the same
// employee and month can both read the same prior row and lose one update.
// The periodic recompute sweep bounds the drift; see cron.StatsJobs.
func (s *StatsServiceImpl) Fold(ctx context.Context, session attendance.Session, billedHours int) error {
	yearMonth := session.YMD[:7]

	existing, err := s.StatsRepository.Get(ctx, session.EmployeeID, yearMonth)
	if err != nil {
		return fmt.Errorf("failed to read monthly stats: %w", err)
	}

	next := stats.MonthlyStats{
		EmployeeID:   session.EmployeeID,
		YearMonth:    yearMonth,
		TotalDays:    1,
		TotalHours:   billedHours,
		TotalMinutes: session.Minutes,
		TotalWage:    session.Wage,
	}
	if existing != nil {
		next.TotalDays += existing.TotalDays
		next.TotalHours += existing.TotalHours
		next.TotalMinutes += existing.TotalMinutes
		next.TotalWage += existing.TotalWage
	}

	if err := s.StatsRepository.Upsert(ctx, next); err != nil {
		return fmt.Errorf("failed to fold session into monthly stats: %w", err)
	}

	return nil
}

// Recompute implements stats.StatsService.
//
// Note the hours formula differs from the incremental fold: recompute derives
// hours from the minute total instead of summing per-session billed hours.
// Preserved as-is for compatibility with existing aggregates.
func (s *StatsServiceImpl) Recompute(ctx context.Context, employeeID, yearMonth string) error {
	sessions, err := s.SessionRepository.ListByEmployeeAndMonth(ctx, employeeID, yearMonth)
	if err != nil {
		return fmt.Errorf("failed to list sessions for recompute: %w", err)
	}

	if len(sessions) == 0 {
		// An empty month has no stats row at all, not a zeroed one.
		if err := s.StatsRepository.Delete(ctx, employeeID, yearMonth); err != nil {
			return fmt.Errorf("failed to delete empty monthly stats: %w", err)
		}
		return nil
	}

	var totalMinutes, totalWage int
	for _, session := range sessions {
		totalMinutes += session.Minutes
		totalWage += session.Wage
	}

	next := stats.MonthlyStats{
		EmployeeID:   employeeID,
		YearMonth:    yearMonth,
		TotalDays:    len(sessions),
		TotalHours:   totalMinutes / 60,
		TotalMinutes: totalMinutes,
		TotalWage:    totalWage,
	}

	if err := s.StatsRepository.Upsert(ctx, next); err != nil {
		return fmt.Errorf("failed to recompute monthly stats: %w", err)
	}

	return nil
}

// GetMonthly implements stats.StatsService.
func (s *StatsServiceImpl) GetMonthly(ctx context.Context, employeeID, yearMonth string) (stats.StatsResponse, error) {
	row, err := s.StatsRepository.Get(ctx, employeeID, yearMonth)
	if err != nil {
		return stats.StatsResponse{}, fmt.Errorf("failed to read monthly stats: %w", err)
	}

	sessions, err := s.SessionRepository.ListByEmployeeAndMonth(ctx, employeeID, yearMonth)
	if err != nil {
		return stats.StatsResponse{}, fmt.Errorf("failed to list sessions for stats: %w", err)
	}

	resp := stats.StatsResponse{
		Daily: make([]stats.DailyStat, 0, len(sessions)),
	}
	if row != nil {
		resp.TotalDays = row.TotalDays
		resp.TotalHours = row.TotalHours
		resp.TotalMinutes = row.TotalMinutes
		resp.TotalWage = row.TotalWage
	}

	for _, session := range sessions {
		resp.Daily = append(resp.Daily, stats.DailyStat{
			Date:    session.YMD,
			Hours:   session.Minutes / 60,
			Minutes: session.Minutes % 60,
			Wage:    session.Wage,
		})
	}

	return resp, nil
}
