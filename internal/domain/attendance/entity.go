package attendance

import (
	"time"
)

// Event actions as stored in attendance_events.
const (
	ActionIn  = "IN"
	ActionOut = "OUT"
)

// Event is one check-in or check-out submission. Events are append-only:
// nothing ever updates a row, and the store allows multiple IN or OUT events
// for the same employee and day.
type Event struct {
	ID         string
	EmployeeID string
	Action     string
	TS         time.Time
	// YMD is the civil date (YYYY-MM-DD) the event belongs to, evaluated in
	// the deployment timezone at submission time.
	YMD       string
	IP        string
	UserAgent string
	CreatedAt time.Time

	// Joined for listings
	EmployeeName  *string
	EmployeePhone *string
}

// Session is a reconciled IN/OUT pair with derived duration and wage.
// Created only when an OUT submission finds a prior IN on the same day.
type Session struct {
	ID         string
	EmployeeID string
	InTS       time.Time
	OutTS      time.Time
	Minutes    int
	Wage       int
	YMD        string
	CreatedAt  time.Time
}
