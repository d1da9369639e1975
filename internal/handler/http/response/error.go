package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/analytics"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/checkin"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/employee"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/site"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/pkg/validator"
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
	// Analytics domain errors
	case errors.Is(err, analytics.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, analytics.ErrReportGenerationFailed):
		InternalServerError(w, "Failed to generate report")

	// Roster domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, checkin.ErrCheckInNotFound):
		NotFound(w, "Check-in not found")

	// Default: store failures and anything unexpected
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
