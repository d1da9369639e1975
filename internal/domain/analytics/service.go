package analytics

import "context"

// AnalyticsService builds the dashboard reports. Every call loads a fresh
// snapshot from the store and aggregates it with a fresh deduplication pass;
// no state is shared between invocations.
type AnalyticsService interface {
	// CountBySite returns unique-employee attendance totals per site
	CountBySite(ctx context.Context) ([]SiteCountRow, error)

	// HourlyGrid returns the dense site x hour-label grid, optionally
	// restricted to a date range
	HourlyGrid(ctx context.Context, req DateRangeRequest) (HourlyGrid, error)

	// Punctuality returns per-site on-time/late splits, optionally
	// restricted to a date range
	Punctuality(ctx context.Context, req DateRangeRequest) (PunctualityReport, error)

	// OnTimePercentage returns the share of unique employees checking in
	// before the cutoff, optionally restricted to a date range
	OnTimePercentage(ctx context.Context, req DateRangeRequest) (*OnTimePercentageResponse, error)

	// LatestDaySummary reports on-time and total unique-employee counts for
	// the most recent local date present in the data
	LatestDaySummary(ctx context.Context) (*LatestDaySummaryResponse, error)
}
