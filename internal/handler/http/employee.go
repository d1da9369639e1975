package http

import (
	"net/http"

	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/employee"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	// GetTotal returns the total employee head count
	GetTotal(w http.ResponseWriter, r *http.Request)
	// ListWithSite returns the roster with resolved site names
	ListWithSite(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// GetTotal handles GET /employees/total
func (h *employeeHandlerImpl) GetTotal(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetTotal(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListWithSite handles GET /employees/with-site
func (h *employeeHandlerImpl) ListWithSite(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListWithSite(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
