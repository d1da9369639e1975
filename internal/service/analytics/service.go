package analytics

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/cmlabs-hris/checkin-analytics-go/internal/config"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/analytics"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/checkin"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/site"
	"golang.org/x/sync/errgroup"
)

type AnalyticsServiceImpl struct {
	siteRepo    site.SiteRepository
	checkInRepo checkin.CheckInRepository
	cfg         config.ReportConfig
	bucketer    *timeBucketer
}

func NewAnalyticsService(siteRepo site.SiteRepository, checkInRepo checkin.CheckInRepository, cfg config.ReportConfig) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		siteRepo:    siteRepo,
		checkInRepo: checkInRepo,
		cfg:         cfg,
		bucketer:    newTimeBucketer(cfg.UTCOffsetHours, cfg.LateCutoffHour, cfg.FirstHourLabel, cfg.LastHourLabel),
	}
}

// passSnapshot is the immutable input of one report pass, fetched once at
// the start and never written back.
type passSnapshot struct {
	sites    []site.Site
	checkIns []checkin.CheckIn
}

// loadSnapshot bulk-reads sites and check-ins in parallel. A failure on
// either read aborts the pass.
func (s *AnalyticsServiceImpl) loadSnapshot(ctx context.Context, from, to time.Time) (*passSnapshot, error) {
	var snapshot passSnapshot

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sites, err := s.siteRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load sites: %w", err)
		}
		snapshot.sites = sites
		return nil
	})

	g.Go(func() error {
		checkIns, err := s.checkInRepo.List(gCtx, from, to)
		if err != nil {
			return fmt.Errorf("failed to load check-ins: %w", err)
		}
		snapshot.checkIns = checkIns
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// usable filters out records the aggregation contract drops: missing
// employee id or missing timestamp.
func usable(c checkin.CheckIn) bool {
	return c.EmployeeID != "" && c.Timestamp != nil
}

var shortCodeRegex = regexp.MustCompile(`\(([^)]+)\)`)

// shortCode reduces a site display name to the code in parentheses when one
// is present, e.g. "Headquarters (HQ)" -> "HQ". Names without parentheses
// are used as-is.
func shortCode(name string) string {
	if m := shortCodeRegex.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return name
}

// round2 rounds to 2 decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CountBySite returns unique-employee attendance totals for every site over
// the full data range. Check-ins outside every site's radius count for no
// site.
func (s *AnalyticsServiceImpl) CountBySite(ctx context.Context) ([]analytics.SiteCountRow, error) {
	snapshot, err := s.loadSnapshot(ctx, defaultRangeStart, defaultRangeEnd)
	if err != nil {
		return nil, err
	}

	matcher := newGeoMatcher(snapshot.sites, s.cfg.MatchRadiusKm)

	agg := newDedupAggregator()
	agg.Prefill(siteIDs(snapshot.sites), []string{bucketAllTime})

	for _, c := range snapshot.checkIns {
		if !usable(c) {
			continue
		}
		matched, _, ok := matcher.Match(c.Latitude, c.Longitude)
		if !ok {
			continue
		}
		agg.Add(matched.ID, bucketAllTime, c.EmployeeID)
	}

	rows := make([]analytics.SiteCountRow, 0, len(snapshot.sites))
	for _, st := range snapshot.sites {
		rows = append(rows, analytics.SiteCountRow{
			LocationName: st.LocationName,
			CheckInCount: agg.Count(st.ID, bucketAllTime),
		})
	}
	return rows, nil
}

// HourlyGrid returns the dense site x hour-label grid. Hours outside the
// fixed label window are excluded; every site appears with every label.
func (s *AnalyticsServiceImpl) HourlyGrid(ctx context.Context, req analytics.DateRangeRequest) (analytics.HourlyGrid, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, to := resolveDateRange(req)
	snapshot, err := s.loadSnapshot(ctx, from, to)
	if err != nil {
		return nil, err
	}

	matcher := newGeoMatcher(snapshot.sites, s.cfg.MatchRadiusKm)

	agg := newDedupAggregator()
	agg.Prefill(siteIDs(snapshot.sites), s.bucketer.HourLabels())

	for _, c := range snapshot.checkIns {
		if !usable(c) {
			continue
		}
		label := s.bucketer.HourLabel(s.bucketer.ToLocal(*c.Timestamp))
		if !s.bucketer.InHourWindow(label) {
			continue
		}
		matched, _, ok := matcher.Match(c.Latitude, c.Longitude)
		if !ok {
			continue
		}
		agg.Add(matched.ID, label, c.EmployeeID)
	}

	grid := make(analytics.HourlyGrid, len(snapshot.sites))
	for _, st := range snapshot.sites {
		cells := make(map[string]int, len(s.bucketer.HourLabels()))
		for _, label := range s.bucketer.HourLabels() {
			cells[label] = agg.Count(st.ID, label)
		}
		grid[shortCode(st.LocationName)] = cells
	}
	return grid, nil
}

// Punctuality returns per-site on-time/late splits using the raw local hour
// against the cutoff, independent of the hour-label window.
func (s *AnalyticsServiceImpl) Punctuality(ctx context.Context, req analytics.DateRangeRequest) (analytics.PunctualityReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, to := resolveDateRange(req)
	snapshot, err := s.loadSnapshot(ctx, from, to)
	if err != nil {
		return nil, err
	}

	matcher := newGeoMatcher(snapshot.sites, s.cfg.MatchRadiusKm)

	agg := newDedupAggregator()
	agg.Prefill(siteIDs(snapshot.sites), []string{bucketOnTime, bucketLate})

	for _, c := range snapshot.checkIns {
		if !usable(c) {
			continue
		}
		matched, _, ok := matcher.Match(c.Latitude, c.Longitude)
		if !ok {
			continue
		}
		bucket := bucketLate
		if s.bucketer.IsBeforeCutoff(s.bucketer.ToLocal(*c.Timestamp)) {
			bucket = bucketOnTime
		}
		agg.Add(matched.ID, bucket, c.EmployeeID)
	}

	report := make(analytics.PunctualityReport, len(snapshot.sites))
	for _, st := range snapshot.sites {
		report[shortCode(st.LocationName)] = analytics.PunctualitySplit{
			OnTime: agg.Count(st.ID, bucketOnTime),
			Late:   agg.Count(st.ID, bucketLate),
		}
	}
	return report, nil
}

// OnTimePercentage returns the share of unique employees who checked in
// before the cutoff across all sites. No geospatial attribution applies.
func (s *AnalyticsServiceImpl) OnTimePercentage(ctx context.Context, req analytics.DateRangeRequest) (*analytics.OnTimePercentageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, to := resolveDateRange(req)
	snapshot, err := s.loadSnapshot(ctx, from, to)
	if err != nil {
		return nil, err
	}

	agg := newDedupAggregator()
	for _, c := range snapshot.checkIns {
		if !usable(c) {
			continue
		}
		agg.Add(globalSite, bucketAllTime, c.EmployeeID)
		if s.bucketer.IsBeforeCutoff(s.bucketer.ToLocal(*c.Timestamp)) {
			agg.Add(globalSite, bucketOnTime, c.EmployeeID)
		}
	}

	total := agg.Count(globalSite, bucketAllTime)
	var percentage float64
	if total > 0 {
		percentage = round2(float64(agg.Count(globalSite, bucketOnTime)) / float64(total) * 100)
	}

	return &analytics.OnTimePercentageResponse{OnTimePercentage: percentage}, nil
}

// LatestDaySummary restricts the data to its single most recent local
// calendar date and reports on-time and total unique-employee counts for
// that date. The lexicographic maximum of ISO date strings is the
// chronological maximum.
func (s *AnalyticsServiceImpl) LatestDaySummary(ctx context.Context) (*analytics.LatestDaySummaryResponse, error) {
	snapshot, err := s.loadSnapshot(ctx, defaultRangeStart, defaultRangeEnd)
	if err != nil {
		return nil, err
	}

	totals := newDedupAggregator()
	onTime := newDedupAggregator()

	for _, c := range snapshot.checkIns {
		if !usable(c) {
			continue
		}
		local := s.bucketer.ToLocal(*c.Timestamp)
		date := s.bucketer.LocalDate(*c.Timestamp)
		totals.Add(globalSite, date, c.EmployeeID)
		if s.bucketer.IsBeforeCutoff(local) {
			onTime.Add(globalSite, date, c.EmployeeID)
		}
	}

	var latestDate string
	for _, key := range totals.Keys() {
		if key.Bucket > latestDate {
			latestDate = key.Bucket
		}
	}

	total := totals.Count(globalSite, latestDate)
	onTimeCount := onTime.Count(globalSite, latestDate)
	var percentage float64
	if total > 0 {
		percentage = round2(float64(onTimeCount) / float64(total) * 100)
	}

	return &analytics.LatestDaySummaryResponse{
		Date:             latestDate,
		OnTimeCount:      onTimeCount,
		TotalCount:       total,
		OnTimePercentage: percentage,
	}, nil
}

func siteIDs(sites []site.Site) []string {
	ids := make([]string, 0, len(sites))
	for _, st := range sites {
		ids = append(ids, st.ID)
	}
	return ids
}
