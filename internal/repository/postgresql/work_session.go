package postgresql

import (
	"context"
	"fmt"

	"github.com/chulcheck/attendance-backend-go/internal/domain/attendance"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepository{db: db}
}

// Create implements attendance.SessionRepository.
func (r *sessionRepository) Create(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_sessions (id, employee_id, in_ts, out_ts, minutes, wage, ymd, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	session.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		session.ID, session.EmployeeID, session.InTS, session.OutTS,
		session.Minutes, session.Wage, session.YMD,
	).Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		return attendance.Session{}, fmt.Errorf("failed to create work session: %w", err)
	}

	return session, nil
}

// ListByEmployeeAndMonth implements attendance.SessionRepository.
func (r *sessionRepository) ListByEmployeeAndMonth(ctx context.Context, employeeID, yearMonth string) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	// ymd is zero-padded YYYY-MM-DD, so a lexicographic range covers the month.
	query := `
		SELECT id, employee_id, in_ts, out_ts, minutes, wage, ymd, created_at
		FROM work_sessions
		WHERE employee_id = $1
		  AND ymd >= $2 || '-01'
		  AND ymd < $2 || '-32'
		ORDER BY ymd ASC, in_ts ASC
	`

	rows, err := q.Query(ctx, query, employeeID, yearMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		var session attendance.Session
		if err := rows.Scan(
			&session.ID, &session.EmployeeID, &session.InTS, &session.OutTS,
			&session.Minutes, &session.Wage, &session.YMD, &session.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work sessions: %w", err)
	}

	return sessions, nil
}

// DeleteByEmployeeAndDate implements attendance.SessionRepository.
func (r *sessionRepository) DeleteByEmployeeAndDate(ctx context.Context, employeeID, ymd string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM work_sessions
		WHERE employee_id = $1 AND ymd = $2
	`

	if _, err := q.Exec(ctx, query, employeeID, ymd); err != nil {
		return fmt.Errorf("failed to delete work sessions: %w", err)
	}

	return nil
}
