package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/chulcheck/attendance-backend-go/internal/config"
	"github.com/chulcheck/attendance-backend-go/internal/domain/attendance"
	"github.com/chulcheck/attendance-backend-go/internal/domain/employee"
	"github.com/chulcheck/attendance-backend-go/internal/domain/stats"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/clock"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/database"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/sse"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/token"
	"github.com/chulcheck/attendance-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	clock  clock.Clock
	tokens *token.Service
	wage   config.WageConfig
	feed   *sse.Hub
	employee.EmployeeRepository
	attendance.EventRepository
	attendance.SessionRepository
	statsService stats.StatsService

	// runInTx wraps the multi-step write paths (submit, delete-day) in a
	// database transaction; overridden in tests.
	runInTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAttendanceService(
	db *database.DB,
	clk clock.Clock,
	tokens *token.Service,
	wage config.WageConfig,
	feed *sse.Hub,
	employeeRepo employee.EmployeeRepository,
	eventRepo attendance.EventRepository,
	sessionRepo attendance.SessionRepository,
	statsService stats.StatsService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		clock:              clk,
		tokens:             tokens,
		wage:               wage,
		feed:               feed,
		EmployeeRepository: employeeRepo,
		EventRepository:    eventRepo,
		SessionRepository:  sessionRepo,
		statsService:       statsService,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// MintLink implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MintLink(ctx context.Context, action string) (attendance.LinkResponse, error) {
	act := token.Action(action)
	if !act.Valid() {
		return attendance.LinkResponse{}, attendance.ErrInvalidAction
	}

	return attendance.LinkResponse{
		URL: s.tokens.CheckinURL(act, s.clock.Today()),
	}, nil
}

// Verify implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Verify(ctx context.Context, req attendance.VerifyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if !s.tokens.Verify(token.Action(req.Action), req.Token, s.clock.Today()) {
		return attendance.ErrInvalidToken
	}

	return nil
}

// Submit implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Submit(ctx context.Context, req attendance.SubmitRequest) (attendance.SubmitResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SubmitResponse{}, err
	}

	today := s.clock.Today()
	now := s.clock.Now()

	// Re-verify on submission: the link a kiosk minted must still match the
	// current civil date.
	if !s.tokens.Verify(token.Action(req.Action), req.Token, today) {
		return attendance.SubmitResponse{}, attendance.ErrInvalidToken
	}

	var message string
	err := s.runInTx(ctx, func(txCtx context.Context) error {
		emp, err := s.EmployeeRepository.Upsert(txCtx, employee.Employee{
			Name:       strings.TrimSpace(req.Name),
			Phone:      strings.TrimSpace(req.Phone),
			HourlyRate: s.wage.DefaultHourlyRate,
		})
		if err != nil {
			return err
		}

		action := attendance.ActionIn
		if req.Action == "out" {
			action = attendance.ActionOut
		}

		if _, err := s.EventRepository.Append(txCtx, attendance.Event{
			EmployeeID: emp.ID,
			Action:     action,
			TS:         now,
			YMD:        today,
			IP:         req.IP,
			UserAgent:  req.UserAgent,
		}); err != nil {
			return err
		}

		if action == attendance.ActionIn {
			message = "Check-in recorded."
			return nil
		}

		message, err = s.reconcile(txCtx, emp.ID, today, now)
		return err
	})
	if err != nil {
		slog.Error("Submit failed", "action", req.Action, "error", err)
		return attendance.SubmitResponse{}, err
	}

	if s.feed != nil {
		s.feed.Publish(sse.Event{
			Event: "attendance",
			Data: map[string]interface{}{
				"action": req.Action,
				"name":   req.Name,
				"ts":     now,
				"ymd":    today,
			},
		})
	}

	return attendance.SubmitResponse{Message: message}, nil
}

// reconcile pairs a check-out with the day's latest check-in. A check-out
// with no usable check-in is accepted and stored but produces no session and
// no wage: a soft no-op, not an error.
func (s *AttendanceServiceImpl) reconcile(ctx context.Context, employeeID, ymd string, outTS time.Time) (string, error) {
	checkIn, err := s.EventRepository.GetLatestIn(ctx, employeeID, ymd)
	if err != nil {
		return "", err
	}
	if checkIn == nil || !outTS.After(checkIn.TS) {
		return "Check-out recorded.", nil
	}

	minutes := DurationMinutes(checkIn.TS, outTS)
	billedHours := BilledHours(minutes)
	wage := SessionWage(billedHours, s.wage)

	session, err := s.SessionRepository.Create(ctx, attendance.Session{
		EmployeeID: employeeID,
		InTS:       checkIn.TS,
		OutTS:      outTS,
		Minutes:    minutes,
		Wage:       wage,
		YMD:        ymd,
	})
	if err != nil {
		return "", err
	}

	if err := s.statsService.Fold(ctx, session, billedHours); err != nil {
		return "", err
	}

	// Raw time plus the billed figure; the wage stays on the admin side.
	return fmt.Sprintf("Check-out recorded.\nWorked: %dh %dm (billed as %d hours)",
		minutes/60, minutes%60, billedHours), nil
}

// ListDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListDay(ctx context.Context, date string, limit int) ([]attendance.DaySummary, error) {
	events, err := s.EventRepository.ListByDate(ctx, date, limit)
	if err != nil {
		return nil, err
	}

	return buildDaySummaries(events, s.wage), nil
}

// buildDaySummaries folds an ordered event stream into one summary per
// employee. Later events win: a second check-in replaces the first, and each
// check-out re-derives the worked time against the current check-in.
func buildDaySummaries(events []attendance.Event, wage config.WageConfig) []attendance.DaySummary {
	byEmployee := make(map[string]*attendance.DaySummary)
	order := make([]string, 0)

	for _, event := range events {
		summary, ok := byEmployee[event.EmployeeID]
		if !ok {
			summary = &attendance.DaySummary{
				EmployeeID: event.EmployeeID,
			}
			if event.EmployeeName != nil {
				summary.Name = *event.EmployeeName
			}
			if event.EmployeePhone != nil {
				summary.Phone = *event.EmployeePhone
			}
			byEmployee[event.EmployeeID] = summary
			order = append(order, event.EmployeeID)
		}

		ts := event.TS
		switch event.Action {
		case attendance.ActionIn:
			summary.CheckIn = &ts
		case attendance.ActionOut:
			summary.CheckOut = &ts
			if summary.CheckIn != nil {
				minutes := DurationMinutes(*summary.CheckIn, ts)
				billedHours := BilledHours(minutes)
				w := SessionWage(billedHours, wage)
				summary.WorkHours = &billedHours
				summary.WorkMinutes = &minutes
				summary.Wage = &w
			}
		}
	}

	summaries := make([]attendance.DaySummary, 0, len(order))
	for _, id := range order {
		summaries = append(summaries, *byEmployee[id])
	}

	// Check-in time ascending, entries without a check-in last.
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].CheckIn, summaries[j].CheckIn
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})

	return summaries
}

// DeleteDay implements attendance.AttendanceService.
//
// The two deletions and the month recompute run in one transaction: the
// caller either sees the whole day removed and the aggregates consistent, or
// nothing changed.
func (s *AttendanceServiceImpl) DeleteDay(ctx context.Context, req attendance.DeleteDayRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.runInTx(ctx, func(txCtx context.Context) error {
		if err := s.EventRepository.DeleteByEmployeeAndDate(txCtx, req.EmployeeID, req.Date); err != nil {
			return err
		}
		if err := s.SessionRepository.DeleteByEmployeeAndDate(txCtx, req.EmployeeID, req.Date); err != nil {
			return err
		}
		return s.statsService.Recompute(txCtx, req.EmployeeID, req.Date[:7])
	})
	if err != nil {
		slog.Error("DeleteDay failed", "employee_id", req.EmployeeID, "date", req.Date, "error", err)
		return err
	}

	return nil
}
