package employee

import (
	"github.com/chulcheck/attendance-backend-go/internal/pkg/validator"
)

type SearchRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (r *SearchRequest) Validate() error {
	var errs validator.ValidationErrors

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
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SearchByNameRequest struct {
	Name string `json:"name"`
}

func (r *SearchByNameRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	HourlyRate int    `json:"hourly_rate"`
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Phone:      emp.Phone,
		HourlyRate: emp.HourlyRate,
	}
}
