package response

import (
	"errors"
	"net/http"

	"github.com/chulcheck/attendance-backend-go/internal/domain/attendance"
	"github.com/chulcheck/attendance-backend-go/internal/domain/employee"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidToken):
		Unauthorized(w, "Token is not valid for today")
	case errors.Is(err, attendance.ErrInvalidAction):
		BadRequest(w, "Action must be in or out", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default: persistence and other unexpected failures
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
