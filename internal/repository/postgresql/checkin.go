package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/checkin"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/pkg/database"
)

type checkInRepositoryImpl struct {
	db *database.DB
}

func NewCheckInRepository(db *database.DB) checkin.CheckInRepository {
	return &checkInRepositoryImpl{db: db}
}

// List implements checkin.CheckInRepository.
func (r *checkInRepositoryImpl) List(ctx context.Context, from, to time.Time) ([]checkin.CheckIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, COALESCE(employee_id, ''), COALESCE(latitude, ''), COALESCE(longitude, ''),
			location_name, timestamp, created_at
		FROM check_ins
		WHERE timestamp >= $1 AND timestamp < $2
		ORDER BY timestamp, id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var checkIns []checkin.CheckIn
	for rows.Next() {
		var c checkin.CheckIn
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.Latitude, &c.Longitude, &c.LocationName, &c.Timestamp, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		checkIns = append(checkIns, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return checkIns, nil
}
