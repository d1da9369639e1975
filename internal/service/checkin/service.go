package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/checkin-analytics-go/internal/config"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/checkin"
)

// Listing endpoints cover the full capture history
var (
	listRangeStart = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	listRangeEnd   = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
)

type CheckInServiceImpl struct {
	checkInRepo checkin.CheckInRepository
	zone        *time.Location
}

func NewCheckInService(checkInRepo checkin.CheckInRepository, cfg config.ReportConfig) checkin.CheckInService {
	return &CheckInServiceImpl{
		checkInRepo: checkInRepo,
		zone:        time.FixedZone(fmt.Sprintf("UTC+%d", cfg.UTCOffsetHours), cfg.UTCOffsetHours*60*60),
	}
}

// ListRecords returns every check-in with its captured location label
func (s *CheckInServiceImpl) ListRecords(ctx context.Context) ([]checkin.RecordRow, error) {
	checkIns, err := s.checkInRepo.List(ctx, listRangeStart, listRangeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	rows := make([]checkin.RecordRow, 0, len(checkIns))
	for _, c := range checkIns {
		if c.Timestamp == nil {
			continue
		}
		locationName := "Unknown"
		if c.LocationName != nil && *c.LocationName != "" {
			locationName = *c.LocationName
		}
		rows = append(rows, checkin.RecordRow{
			Timestamp:    c.Timestamp.UTC().Format(time.RFC3339),
			LocationName: locationName,
		})
	}
	return rows, nil
}

// ListConvertedTimes returns every check-in timestamp next to its local-time
// conversion
func (s *CheckInServiceImpl) ListConvertedTimes(ctx context.Context) ([]checkin.ConvertedTimeRow, error) {
	checkIns, err := s.checkInRepo.List(ctx, listRangeStart, listRangeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	rows := make([]checkin.ConvertedTimeRow, 0, len(checkIns))
	for _, c := range checkIns {
		if c.Timestamp == nil {
			continue
		}
		rows = append(rows, checkin.ConvertedTimeRow{
			OriginalTimestamp:  c.Timestamp.UTC().Format(time.RFC3339),
			ConvertedTimestamp: c.Timestamp.In(s.zone).Format(time.RFC3339),
		})
	}
	return rows, nil
}
