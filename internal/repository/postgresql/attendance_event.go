package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/chulcheck/attendance-backend-go/internal/domain/attendance"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type eventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) attendance.EventRepository {
	return &eventRepository{db: db}
}

// Append implements attendance.EventRepository.
func (r *eventRepository) Append(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (id, employee_id, action, ts, ymd, ip, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	event.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		event.ID, event.EmployeeID, event.Action, event.TS, event.YMD,
		event.IP, event.UserAgent,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to append attendance event: %w", err)
	}

	return event, nil
}

// GetLatestIn implements attendance.EventRepository.
func (r *eventRepository) GetLatestIn(ctx context.Context, employeeID, ymd string) (*attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, action, ts, ymd, ip, user_agent, created_at
		FROM attendance_events
		WHERE employee_id = $1
		  AND ymd = $2
		  AND action = 'IN'
		ORDER BY ts DESC
		LIMIT 1
	`

	var event attendance.Event
	err := q.QueryRow(ctx, query, employeeID, ymd).Scan(
		&event.ID, &event.EmployeeID, &event.Action, &event.TS, &event.YMD,
		&event.IP, &event.UserAgent, &event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no check-in that day
		}
		return nil, fmt.Errorf("failed to get latest check-in: %w", err)
	}

	return &event, nil
}

// ListByDate implements attendance.EventRepository.
func (r *eventRepository) ListByDate(ctx context.Context, ymd string, limit int) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.employee_id, e.action, e.ts, e.ymd, e.ip, e.user_agent, e.created_at,
		       emp.name, emp.phone
		FROM attendance_events e
		JOIN employees emp ON emp.id = e.employee_id
		WHERE e.ymd = $1
		ORDER BY e.ts ASC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, ymd, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var event attendance.Event
		if err := rows.Scan(
			&event.ID, &event.EmployeeID, &event.Action, &event.TS, &event.YMD,
			&event.IP, &event.UserAgent, &event.CreatedAt,
			&event.EmployeeName, &event.EmployeePhone,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance events: %w", err)
	}

	return events, nil
}

// DeleteByEmployeeAndDate implements attendance.EventRepository.
func (r *eventRepository) DeleteByEmployeeAndDate(ctx context.Context, employeeID, ymd string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM attendance_events
		WHERE employee_id = $1 AND ymd = $2
	`

	if _, err := q.Exec(ctx, query, employeeID, ymd); err != nil {
		return fmt.Errorf("failed to delete attendance events: %w", err)
	}

	return nil
}
