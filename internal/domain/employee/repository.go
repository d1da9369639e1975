package employee

import "context"

// EmployeeRepository defines read access to the employee roster. Employees
// are maintained by the HRIS backend; this API never writes them.
type EmployeeRepository interface {
	// Count returns the total number of registered employees
	Count(ctx context.Context) (int64, error)

	// ListWithSite returns every employee joined with their site's display
	// name. Employees without a site get an empty location name.
	ListWithSite(ctx context.Context) ([]WithSiteRow, error)
}
