package analytics

import (
	"github.com/cmlabs-hris/checkin-analytics-go/internal/pkg/validator"
)

// ========================================
// DATE-RANGE FILTER
// ========================================

// DateRangeRequest carries the optional start_date/end_date query parameters
// shared by the filtered reports. Both must be given to narrow the range;
// otherwise the effectively unbounded default range is used.
type DateRangeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *DateRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.StartDate != "" && r.EndDate != "" {
		start, okStart := validator.IsValidDate(r.StartDate)
		end, okEnd := validator.IsValidDate(r.EndDate)
		if okStart && okEnd && start.After(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be after start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// PER-SITE TOTALS
// ========================================

// SiteCountRow is one per-site attendance total. Counts are unique employees,
// not raw check-ins.
type SiteCountRow struct {
	LocationName string `json:"location_name"`
	CheckInCount int    `json:"check_in_count"`
}

// ========================================
// PER-SITE PER-HOUR GRID
// ========================================

// HourlyGrid maps site short code -> hour label -> unique employee count.
// Every registered site appears with every hour label, zero-filled.
type HourlyGrid map[string]map[string]int

// ========================================
// PUNCTUALITY SPLIT
// ========================================

// PunctualitySplit is the before/after-cutoff split for one site
type PunctualitySplit struct {
	OnTime int `json:"on_time"`
	Late   int `json:"late"`
}

// PunctualityReport maps site short code -> on-time/late counts
type PunctualityReport map[string]PunctualitySplit

// ========================================
// ON-TIME PERCENTAGE
// ========================================

type OnTimePercentageResponse struct {
	OnTimePercentage float64 `json:"on_time_percentage"`
}

// ========================================
// LATEST-DAY SUMMARY
// ========================================

// LatestDaySummaryResponse reports the single most recent local date present
// in the data. All counts are unique employees for that date only.
type LatestDaySummaryResponse struct {
	Date             string  `json:"date"`
	OnTimeCount      int     `json:"on_time_count"`
	TotalCount       int     `json:"total_count"`
	OnTimePercentage float64 `json:"on_time_percentage"`
}
