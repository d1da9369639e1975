package employee

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// GetTotal returns the total employee head count
func (s *EmployeeServiceImpl) GetTotal(ctx context.Context) (*employee.TotalResponse, error) {
	total, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	return &employee.TotalResponse{Total: total}, nil
}

// ListWithSite returns the roster with resolved site names. Employees
// without an assigned site are reported as "Unknown".
func (s *EmployeeServiceImpl) ListWithSite(ctx context.Context) ([]employee.WithSiteRow, error) {
	rows, err := s.employeeRepo.ListWithSite(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees with site: %w", err)
	}

	for i := range rows {
		if rows[i].LocationName == "" {
			rows[i].LocationName = "Unknown"
		}
	}
	return rows, nil
}
