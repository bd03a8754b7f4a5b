package stats

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/chulcheck/attendance-backend-go/internal/domain/attendance"
	"github.com/chulcheck/attendance-backend-go/internal/domain/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsRepo struct {
	rows map[string]stats.MonthlyStats
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{rows: make(map[string]stats.MonthlyStats)}
}

func (r *fakeStatsRepo) Get(ctx context.Context, employeeID, yearMonth string) (*stats.MonthlyStats, error) {
	if row, ok := r.rows[employeeID+"|"+yearMonth]; ok {
		return &row, nil
	}
	return nil, nil
}

func (r *fakeStatsRepo) Upsert(ctx context.Context, s stats.MonthlyStats) error {
	r.rows[s.EmployeeID+"|"+s.YearMonth] = s
	return nil
}

func (r *fakeStatsRepo) Delete(ctx context.Context, employeeID, yearMonth string) error {
	delete(r.rows, employeeID+"|"+yearMonth)
	return nil
}

type fakeSessionRepo struct {
	sessions []attendance.Session
}

func (r *fakeSessionRepo) Create(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	r.sessions = append(r.sessions, session)
	return session, nil
}

func (r *fakeSessionRepo) ListByEmployeeAndMonth(ctx context.Context, employeeID, yearMonth string) ([]attendance.Session, error) {
	var out []attendance.Session
	for _, s := range r.sessions {
		if s.EmployeeID == employeeID && strings.HasPrefix(s.YMD, yearMonth+"-") {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].YMD < out[j].YMD })
	return out, nil
}

func (r *fakeSessionRepo) DeleteByEmployeeAndDate(ctx context.Context, employeeID, ymd string) error {
	kept := r.sessions[:0]
	for _, s := range r.sessions {
		if !(s.EmployeeID == employeeID && s.YMD == ymd) {
			kept = append(kept, s)
		}
	}
	r.sessions = kept
	return nil
}

func session(ymd string, minutes, wage int) attendance.Session {
	in := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	return attendance.Session{
		EmployeeID: "emp-1",
		InTS:       in,
		OutTS:      in.Add(time.Duration(minutes) * time.Minute),
		Minutes:    minutes,
		Wage:       wage,
		YMD:        ymd,
	}
}

func TestFold_Accumulates(t *testing.T) {
	statsRepo := newFakeStatsRepo()
	svc := NewStatsService(statsRepo, &fakeSessionRepo{})
	ctx := context.Background()

	require.NoError(t, svc.Fold(ctx, session("2025-03-15", 60, 20000), 1))
	require.NoError(t, svc.Fold(ctx, session("2025-03-16", 90, 30000), 2))

	row, err := statsRepo.Get(ctx, "emp-1", "2025-03")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 2, row.TotalDays)
	assert.Equal(t, 3, row.TotalHours)
	assert.Equal(t, 150, row.TotalMinutes)
	assert.Equal(t, 50000, row.TotalWage)
}

func TestRecompute_RebuildsFromSessions(t *testing.T) {
	statsRepo := newFakeStatsRepo()
	sessionRepo := &fakeSessionRepo{}
	svc := NewStatsService(statsRepo, sessionRepo)
	ctx := context.Background()

	for _, s := range []attendance.Session{
		session("2025-03-15", 60, 20000),
		session("2025-03-16", 90, 30000),
	} {
		_, err := sessionRepo.Create(ctx, s)
		require.NoError(t, err)
		require.NoError(t, svc.Fold(ctx, s, s.Minutes/60))
	}

	require.NoError(t, sessionRepo.DeleteByEmployeeAndDate(ctx, "emp-1", "2025-03-15"))
	require.NoError(t, svc.Recompute(ctx, "emp-1", "2025-03"))

	row, err := statsRepo.Get(ctx, "emp-1", "2025-03")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 1, row.TotalDays)
	assert.Equal(t, 90, row.TotalMinutes)
	assert.Equal(t, 30000, row.TotalWage)
}

func TestRecompute_EmptyMonthDeletesRow(t *testing.T) {
	statsRepo := newFakeStatsRepo()
	sessionRepo := &fakeSessionRepo{}
	svc := NewStatsService(statsRepo, sessionRepo)
	ctx := context.Background()

	s := session("2025-03-15", 60, 20000)
	_, err := sessionRepo.Create(ctx, s)
	require.NoError(t, err)
	require.NoError(t, svc.Fold(ctx, s, 1))

	require.NoError(t, sessionRepo.DeleteByEmployeeAndDate(ctx, "emp-1", "2025-03-15"))
	require.NoError(t, svc.Recompute(ctx, "emp-1", "2025-03"))

	row, err := statsRepo.Get(ctx, "emp-1", "2025-03")
	require.NoError(t, err)
	assert.Nil(t, row, "empty month has no stats row")
}

func TestFoldAndRecompute_HoursDiverge(t *testing.T) {
	statsRepo := newFakeStatsRepo()
	sessionRepo := &fakeSessionRepo{}
	svc := NewStatsService(statsRepo, sessionRepo)
	ctx := context.Background()

	// Two 50-minute sessions each bill as one hour, so the incremental fold
	// counts 2 hours while a recompute over raw minutes counts 100/60 = 1.
	for _, ymd := range []string{"2025-03-15", "2025-03-16"} {
		s := session(ymd, 50, 20000)
		_, err := sessionRepo.Create(ctx, s)
		require.NoError(t, err)
		require.NoError(t, svc.Fold(ctx, s, 1))
	}

	row, err := statsRepo.Get(ctx, "emp-1", "2025-03")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 2, row.TotalHours)

	require.NoError(t, svc.Recompute(ctx, "emp-1", "2025-03"))
	row, err = statsRepo.Get(ctx, "emp-1", "2025-03")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 1, row.TotalHours)
	assert.Equal(t, 100, row.TotalMinutes)
}

func TestGetMonthly(t *testing.T) {
	statsRepo := newFakeStatsRepo()
	sessionRepo := &fakeSessionRepo{}
	svc := NewStatsService(statsRepo, sessionRepo)
	ctx := context.Background()

	s := session("2025-03-15", 125, 30000)
	_, err := sessionRepo.Create(ctx, s)
	require.NoError(t, err)
	require.NoError(t, svc.Fold(ctx, s, 2))

	resp, err := svc.GetMonthly(ctx, "emp-1", "2025-03")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalDays)
	assert.Equal(t, 125, resp.TotalMinutes)
	assert.Equal(t, 30000, resp.TotalWage)

	require.Len(t, resp.Daily, 1)
	assert.Equal(t, "2025-03-15", resp.Daily[0].Date)
	assert.Equal(t, 2, resp.Daily[0].Hours)
	assert.Equal(t, 5, resp.Daily[0].Minutes)
	assert.Equal(t, 30000, resp.Daily[0].Wage)
}

func TestGetMonthly_NoData(t *testing.T) {
	svc := NewStatsService(newFakeStatsRepo(), &fakeSessionRepo{})

	resp, err := svc.GetMonthly(context.Background(), "emp-1", "2025-03")
	require.NoError(t, err)
	assert.Zero(t, resp.TotalDays)
	assert.Zero(t, resp.TotalWage)
	assert.Empty(t, resp.Daily)
}
