package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/site"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/pkg/database"
)

type siteRepositoryImpl struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.SiteRepository {
	return &siteRepositoryImpl{db: db}
}

// List implements site.SiteRepository.
func (r *siteRepositoryImpl) List(ctx context.Context) ([]site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, location_name, latitude, longitude, created_at, updated_at
		FROM sites
		ORDER BY location_name, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		var s site.Site
		if err := rows.Scan(&s.ID, &s.LocationName, &s.Latitude, &s.Longitude, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sites, nil
}
