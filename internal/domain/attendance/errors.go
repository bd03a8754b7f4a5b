package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidToken  = errors.New("token is not valid for today")
	ErrInvalidAction = errors.New("action must be in or out")
)
