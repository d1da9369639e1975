package analytics

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/analytics"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/pkg/validator"
)

// Default filter range when no usable start_date/end_date pair is given.
// Wide enough to be effectively unbounded for attendance data.
var (
	defaultRangeStart = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	defaultRangeEnd   = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
)

// timeBucketer converts UTC instants to the fixed local offset and maps them
// to discrete buckets. The zone is a fixed offset, not a DST-aware location.
type timeBucketer struct {
	zone       *time.Location
	cutoffHour int
	hourLabels []string
	labelSet   map[string]struct{}
}

func newTimeBucketer(utcOffsetHours, cutoffHour, firstHour, lastHour int) *timeBucketer {
	labels := make([]string, 0, lastHour-firstHour+1)
	labelSet := make(map[string]struct{}, lastHour-firstHour+1)
	for h := firstHour; h <= lastHour; h++ {
		label := fmt.Sprintf("%02d:00", h)
		labels = append(labels, label)
		labelSet[label] = struct{}{}
	}

	return &timeBucketer{
		zone:       time.FixedZone(fmt.Sprintf("UTC+%d", utcOffsetHours), utcOffsetHours*60*60),
		cutoffHour: cutoffHour,
		hourLabels: labels,
		labelSet:   labelSet,
	}
}

// ToLocal converts a UTC instant to local time
func (b *timeBucketer) ToLocal(t time.Time) time.Time {
	return t.In(b.zone)
}

// HourLabel truncates a local instant to its "HH:00" label
func (b *timeBucketer) HourLabel(local time.Time) string {
	return local.Format("15:00")
}

// InHourWindow reports whether a label belongs to the fixed hour-label set
func (b *timeBucketer) InHourWindow(label string) bool {
	_, ok := b.labelSet[label]
	return ok
}

// IsBeforeCutoff reports whether a local instant falls before the cutoff
// hour. It uses the raw hour value, not the hour-label window.
func (b *timeBucketer) IsBeforeCutoff(local time.Time) bool {
	return local.Hour() < b.cutoffHour
}

// LocalDate returns the local calendar date of a UTC instant as YYYY-MM-DD
func (b *timeBucketer) LocalDate(t time.Time) string {
	return b.ToLocal(t).Format("2006-01-02")
}

// HourLabels returns the ordered fixed hour-label set
func (b *timeBucketer) HourLabels() []string {
	return b.hourLabels
}

// resolveDateRange turns the optional start_date/end_date pair into a
// [from, to) UTC window: start inclusive, end exclusive. Both dates must be
// present and parseable to narrow the range, matching the dashboard's
// filtering contract; otherwise the default range applies.
func resolveDateRange(req analytics.DateRangeRequest) (time.Time, time.Time) {
	if req.StartDate == "" || req.EndDate == "" {
		return defaultRangeStart, defaultRangeEnd
	}

	start, okStart := validator.IsValidDate(req.StartDate)
	end, okEnd := validator.IsValidDate(req.EndDate)
	if !okStart || !okEnd {
		return defaultRangeStart, defaultRangeEnd
	}

	return start.UTC(), end.UTC()
}
