package analytics

// Well-known bucket names shared by the report shapes
const (
	bucketAllTime = "all"
	bucketOnTime  = "on_time"
	bucketLate    = "late"
)

// globalSite keys site-less buckets in the global report shapes
const globalSite = ""

// bucketKey identifies one deduplication cell
type bucketKey struct {
	SiteID string
	Bucket string
}

// dedupAggregator counts unique employees per (site, bucket) cell. Repeated
// observations of the same employee in the same cell never inflate the
// count; Count returns the size of the employee set, not the number of
// observations.
type dedupAggregator struct {
	seen map[bucketKey]map[string]struct{}
}

func newDedupAggregator() *dedupAggregator {
	return &dedupAggregator{
		seen: make(map[bucketKey]map[string]struct{}),
	}
}

// Prefill registers every site x bucket combination with an empty employee
// set so combinations without observations still appear in shaped output.
func (a *dedupAggregator) Prefill(siteIDs, buckets []string) {
	for _, siteID := range siteIDs {
		for _, bucket := range buckets {
			key := bucketKey{SiteID: siteID, Bucket: bucket}
			if _, ok := a.seen[key]; !ok {
				a.seen[key] = make(map[string]struct{})
			}
		}
	}
}

// Add records one observation of an employee in a cell
func (a *dedupAggregator) Add(siteID, bucket, employeeID string) {
	key := bucketKey{SiteID: siteID, Bucket: bucket}
	set, ok := a.seen[key]
	if !ok {
		set = make(map[string]struct{})
		a.seen[key] = set
	}
	set[employeeID] = struct{}{}
}

// Count returns the number of distinct employees observed in a cell
func (a *dedupAggregator) Count(siteID, bucket string) int {
	return len(a.seen[bucketKey{SiteID: siteID, Bucket: bucket}])
}

// Keys returns every cell known to the aggregator, prefilled or observed
func (a *dedupAggregator) Keys() []bucketKey {
	keys := make([]bucketKey, 0, len(a.seen))
	for key := range a.seen {
		keys = append(keys, key)
	}
	return keys
}
