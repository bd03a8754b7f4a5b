package attendance

import (
	"context"
)

// AttendanceService defines business logic for the submission flow and the
// administrative day views.
type AttendanceService interface {
	// MintLink builds today's QR link for an action.
	MintLink(ctx context.Context, action string) (LinkResponse, error)

	// Verify checks a token against today's expected value.
	Verify(ctx context.Context, req VerifyRequest) error

	// Submit records a check-in or check-out. A check-out additionally
	// reconciles a work session against the day's latest check-in and folds
	// it into the monthly statistics.
	Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error)

	// ListDay returns per-employee day summaries ordered by check-in time
	// ascending, entries without a check-in last.
	ListDay(ctx context.Context, date string, limit int) ([]DaySummary, error)

	// DeleteDay removes all events and sessions for an employee on a date
	// and recomputes the owning month's statistics.
	DeleteDay(ctx context.Context, req DeleteDayRequest) error
}
