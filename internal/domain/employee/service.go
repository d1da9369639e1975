package employee

import "context"

// EmployeeService defines the roster operations exposed to the dashboard
type EmployeeService interface {
	// GetTotal returns the total employee head count
	GetTotal(ctx context.Context) (*TotalResponse, error)

	// ListWithSite returns the roster with resolved site names
	ListWithSite(ctx context.Context) ([]WithSiteRow, error)
}
