package attendance

import (
	"time"

	"github.com/chulcheck/attendance-backend-go/internal/pkg/validator"
)

// Wire actions, as they appear in QR links and request payloads.
var wireActions = []string{"in", "out"}

type VerifyRequest struct {
	Action string `json:"action"`
	Token  string `json:"token"`
}

func (r *VerifyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action is required",
		})
	} else if !validator.IsInSlice(r.Action, wireActions) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be in or out",
		})
	}

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitRequest struct {
	Action string `json:"action"`
	Token  string `json:"token"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`

	// Attached by the handler, not part of the payload.
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action is required",
		})
	} else if !validator.IsInSlice(r.Action, wireActions) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be in or out",
		})
	}

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid mobile number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LinkResponse struct {
	URL string `json:"url"`
}

// SubmitResponse carries the human-readable result. On a reconciled check-out
// the message reports raw worked time and billed hours; the wage is never
// exposed to the submitting employee.
type SubmitResponse struct {
	Message string `json:"message"`
}

// DaySummary is one employee's reconciled view of a single day, as shown on
// the admin day listing. Wage is included here: the listing is an admin view.
type DaySummary struct {
	EmployeeID  string     `json:"employee_id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	CheckIn     *time.Time `json:"check_in"`
	CheckOut    *time.Time `json:"check_out"`
	WorkHours   *int       `json:"work_hours"`
	WorkMinutes *int       `json:"work_minutes"`
	Wage        *int       `json:"wage"`
}

type DeleteDayRequest struct {
	EmployeeID string
	Date       string
}

func (r *DeleteDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
