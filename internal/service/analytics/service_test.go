package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/checkin-analytics-go/internal/config"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/analytics"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/checkin"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKE REPOSITORIES =====

type stubSiteRepo struct {
	sites []site.Site
	err   error
}

func (s *stubSiteRepo) List(ctx context.Context) ([]site.Site, error) {
	return s.sites, s.err
}

type stubCheckInRepo struct {
	checkIns []checkin.CheckIn
	err      error
}

// List mimics the store's date filtering: timestamp in [from, to), NULL
// timestamps never returned.
func (s *stubCheckInRepo) List(ctx context.Context, from, to time.Time) ([]checkin.CheckIn, error) {
	if s.err != nil {
		return nil, s.err
	}
	var result []checkin.CheckIn
	for _, c := range s.checkIns {
		if c.Timestamp == nil {
			continue
		}
		if c.Timestamp.Before(from) || !c.Timestamp.Before(to) {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func testReportConfig() config.ReportConfig {
	return config.ReportConfig{
		MatchRadiusKm:  1.0,
		UTCOffsetHours: 7,
		LateCutoffHour: 10,
		FirstHourLabel: 7,
		LastHourLabel:  13,
	}
}

func newTestService(sites []site.Site, checkIns []checkin.CheckIn) analytics.AnalyticsService {
	return NewAnalyticsService(
		&stubSiteRepo{sites: sites},
		&stubCheckInRepo{checkIns: checkIns},
		testReportConfig(),
	)
}

func tsPtr(t *testing.T, value string) *time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return &parsed
}

// Two sites ~2.9 km apart; check-ins at (13.001, 100.001) are within 1 km of
// site A only.
func twoSites() []site.Site {
	return []site.Site{
		{ID: "site-a", LocationName: "Bangkok HQ (BKK)", Latitude: "13.00", Longitude: "100.00"},
		{ID: "site-b", LocationName: "Riverside Office (RVS)", Latitude: "13.02", Longitude: "100.02"},
	}
}

// ===== COUNT BY SITE =====

func TestAnalyticsService_CountBySite_DeduplicatesPerEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(twoSites(), []checkin.CheckIn{
		{ID: "c1", EmployeeID: "E1", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T01:10:00Z")},
		{ID: "c2", EmployeeID: "E1", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T01:40:00Z")},
		{ID: "c3", EmployeeID: "E2", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T02:00:00Z")},
	})

	rows, err := svc.CountBySite(ctx)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, analytics.SiteCountRow{LocationName: "Bangkok HQ (BKK)", CheckInCount: 2}, rows[0])
	assert.Equal(t, analytics.SiteCountRow{LocationName: "Riverside Office (RVS)", CheckInCount: 0}, rows[1])
}

func TestAnalyticsService_CountBySite_SkipsUnusableRecords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(twoSites(), []checkin.CheckIn{
		// No employee id
		{ID: "c1", EmployeeID: "", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T01:10:00Z")},
		// No timestamp
		{ID: "c2", EmployeeID: "E1", Latitude: "13.001", Longitude: "100.001"},
		// Malformed coordinates
		{ID: "c3", EmployeeID: "E2", Latitude: "not-a-number", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T01:10:00Z")},
		// Outside every site's radius
		{ID: "c4", EmployeeID: "E3", Latitude: "14.00", Longitude: "101.00", Timestamp: tsPtr(t, "2024-01-01T01:10:00Z")},
	})

	rows, err := svc.CountBySite(ctx)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].CheckInCount)
	assert.Equal(t, 0, rows[1].CheckInCount)
}

// ===== HOURLY GRID =====

func TestAnalyticsService_HourlyGrid_ZeroFilledWithoutCheckIns(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(twoSites(), nil)

	grid, err := svc.HourlyGrid(ctx, analytics.DateRangeRequest{})

	require.NoError(t, err)
	require.Len(t, grid, 2)
	for _, code := range []string{"BKK", "RVS"} {
		require.Contains(t, grid, code)
		require.Len(t, grid[code], 7)
		for label, count := range grid[code] {
			assert.Equal(t, 0, count, "expected zero for %s %s", code, label)
		}
	}
}

func TestAnalyticsService_HourlyGrid_AttributesAndDeduplicates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(twoSites(), []checkin.CheckIn{
		// 08:10 and 08:40 local, same employee, same hour: counts once
		{ID: "c1", EmployeeID: "E1", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T01:10:00Z")},
		{ID: "c2", EmployeeID: "E1", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T01:40:00Z")},
		// 15:00 local: outside the hour-label window, excluded
		{ID: "c3", EmployeeID: "E2", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T08:00:00Z")},
	})

	grid, err := svc.HourlyGrid(ctx, analytics.DateRangeRequest{})

	require.NoError(t, err)
	assert.Equal(t, 1, grid["BKK"]["08:00"])
	assert.Equal(t, 0, grid["RVS"]["08:00"])
	assert.NotContains(t, grid["BKK"], "15:00")
}

func TestAnalyticsService_HourlyGrid_DateFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(twoSites(), []checkin.CheckIn{
		{ID: "c1", EmployeeID: "E1", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T01:10:00Z")},
		{ID: "c2", EmployeeID: "E2", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-02-05T01:10:00Z")},
	})

	grid, err := svc.HourlyGrid(ctx, analytics.DateRangeRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-02-01",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, grid["BKK"]["08:00"])
}

func TestAnalyticsService_HourlyGrid_InvalidDateParams(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(twoSites(), nil)

	_, err := svc.HourlyGrid(ctx, analytics.DateRangeRequest{
		StartDate: "01-01-2024",
		EndDate:   "2024-02-01",
	})

	assert.Error(t, err)
}

// ===== PUNCTUALITY =====

func TestAnalyticsService_Punctuality_SplitsOnCutoff(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(twoSites(), []checkin.CheckIn{
		// 08:10 local: on time
		{ID: "c1", EmployeeID: "E1", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T01:10:00Z")},
		// 15:00 local: outside the hour-label window but still counted late
		{ID: "c2", EmployeeID: "E2", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T08:00:00Z")},
	})

	report, err := svc.Punctuality(ctx, analytics.DateRangeRequest{})

	require.NoError(t, err)
	assert.Equal(t, analytics.PunctualitySplit{OnTime: 1, Late: 1}, report["BKK"])
	assert.Equal(t, analytics.PunctualitySplit{OnTime: 0, Late: 0}, report["RVS"])
}

// ===== ON-TIME PERCENTAGE =====

func TestAnalyticsService_OnTimePercentage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(twoSites(), []checkin.CheckIn{
		// 08:00 local: before cutoff
		{ID: "c1", EmployeeID: "E1", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T01:00:00Z")},
		// 11:00 local: after cutoff
		{ID: "c2", EmployeeID: "E2", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T04:00:00Z")},
	})

	result, err := svc.OnTimePercentage(ctx, analytics.DateRangeRequest{})

	require.NoError(t, err)
	assert.InDelta(t, 50.0, result.OnTimePercentage, 0.001)
}

func TestAnalyticsService_OnTimePercentage_ZeroWhenEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(twoSites(), nil)

	result, err := svc.OnTimePercentage(ctx, analytics.DateRangeRequest{})

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.OnTimePercentage)
}

// ===== LATEST-DAY SUMMARY =====

func TestAnalyticsService_LatestDaySummary_RestrictsToMostRecentDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(twoSites(), []checkin.CheckIn{
		// 2024-01-01: two unique employees before the cutoff
		{ID: "c1", EmployeeID: "E1", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T02:00:00Z")},
		{ID: "c2", EmployeeID: "E2", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T02:30:00Z")},
		// 2024-01-02: one unique employee before the cutoff
		{ID: "c3", EmployeeID: "E3", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-02T01:00:00Z")},
	})

	result, err := svc.LatestDaySummary(ctx)

	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", result.Date)
	assert.Equal(t, 1, result.OnTimeCount)
	assert.Equal(t, 1, result.TotalCount)
	assert.InDelta(t, 100.0, result.OnTimePercentage, 0.001)
}

func TestAnalyticsService_LatestDaySummary_EmptyStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(twoSites(), nil)

	result, err := svc.LatestDaySummary(ctx)

	require.NoError(t, err)
	assert.Equal(t, "", result.Date)
	assert.Equal(t, 0, result.TotalCount)
	assert.Equal(t, 0.0, result.OnTimePercentage)
}

// ===== PASS SEMANTICS =====

func TestAnalyticsService_PassIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(twoSites(), []checkin.CheckIn{
		{ID: "c1", EmployeeID: "E1", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T01:10:00Z")},
		{ID: "c2", EmployeeID: "E2", Latitude: "13.001", Longitude: "100.001", Timestamp: tsPtr(t, "2024-01-01T08:00:00Z")},
	})

	first, err := svc.HourlyGrid(ctx, analytics.DateRangeRequest{})
	require.NoError(t, err)
	second, err := svc.HourlyGrid(ctx, analytics.DateRangeRequest{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyticsService_StoreFailureAbortsPass(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewAnalyticsService(
		&stubSiteRepo{sites: twoSites()},
		&stubCheckInRepo{err: errors.New("connection refused")},
		testReportConfig(),
	)

	rows, err := svc.CountBySite(ctx)

	assert.Error(t, err)
	assert.Nil(t, rows)
}

// ===== OUTPUT SHAPING =====

func TestShortCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BKK", shortCode("Bangkok HQ (BKK)"))
	assert.Equal(t, "Warehouse", shortCode("Warehouse"))
	assert.Equal(t, "A1", shortCode("Plant (A1) North"))
}
