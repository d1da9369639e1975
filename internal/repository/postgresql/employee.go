package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/employee"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}

// ListWithSite implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListWithSite(ctx context.Context) ([]employee.WithSiteRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.first_name_th, e.last_name_th, e.first_name_en, e.last_name_en,
			e.email, COALESCE(s.location_name, '') AS location_name
		FROM employees e
		LEFT JOIN sites s ON e.site_id = s.id
		ORDER BY e.first_name_en, e.last_name_en, e.id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees with site: %w", err)
	}
	defer rows.Close()

	var result []employee.WithSiteRow
	for rows.Next() {
		var firstTH, lastTH, firstEN, lastEN, email, locationName string
		if err := rows.Scan(&firstTH, &lastTH, &firstEN, &lastEN, &email, &locationName); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		result = append(result, employee.WithSiteRow{
			FullNameTH:   strings.TrimSpace(firstTH + " " + lastTH),
			FullNameEN:   strings.TrimSpace(firstEN + " " + lastEN),
			Email:        email,
			LocationName: locationName,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
