package employee

import (
	"time"
)

type Employee struct {
	ID    string
	Name  string
	Phone string
	// HourlyRate is the base rate assigned at creation. Wage computation for
	// sessions uses the deployment-wide policy, not this field; it exists for
	// rate edits handled outside the submission flow.
	HourlyRate int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
