package analytics

import (
	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/site"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/pkg/geo"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/pkg/validator"
)

// siteLocation is a site whose stored text coordinates parsed successfully.
// Only these participate in matching.
type siteLocation struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
}

// resolveSiteLocations parses site coordinates once per pass. Sites with
// non-numeric or out-of-range coordinates are left out of matching; they
// still appear zero-filled in shaped reports.
func resolveSiteLocations(sites []site.Site) []siteLocation {
	locations := make([]siteLocation, 0, len(sites))
	for _, s := range sites {
		lat, okLat := validator.ParseLatitude(s.Latitude)
		long, okLong := validator.ParseLongitude(s.Longitude)
		if !okLat || !okLong {
			continue
		}
		locations = append(locations, siteLocation{
			ID:        s.ID,
			Name:      s.LocationName,
			Latitude:  lat,
			Longitude: long,
		})
	}
	return locations
}

type geoMatcher struct {
	sites    []siteLocation
	radiusKm float64
}

func newGeoMatcher(sites []site.Site, radiusKm float64) *geoMatcher {
	return &geoMatcher{
		sites:    resolveSiteLocations(sites),
		radiusKm: radiusKm,
	}
}

// Match resolves a check-in coordinate pair to the nearest site within the
// radius. Exactly equal minimal distances resolve to the lowest site ID so
// the result does not depend on site ordering. Malformed coordinates are not
// matchable and report no match.
func (m *geoMatcher) Match(latitude, longitude string) (siteLocation, float64, bool) {
	lat, okLat := validator.ParseLatitude(latitude)
	long, okLong := validator.ParseLongitude(longitude)
	if !okLat || !okLong {
		return siteLocation{}, 0, false
	}

	var (
		nearest  siteLocation
		bestDist float64
		found    bool
	)

	for _, s := range m.sites {
		// Coarse pre-filter: latitude separation alone already puts the
		// site beyond the radius, so the exact distance cannot be within it.
		if geo.BeyondLatitudeBound(lat, s.Latitude, m.radiusKm) {
			continue
		}

		dist := geo.HaversineDistanceKm(lat, long, s.Latitude, s.Longitude)
		if dist > m.radiusKm {
			continue
		}

		switch {
		case !found || dist < bestDist:
			nearest = s
			bestDist = dist
			found = true
		case dist == bestDist && s.ID < nearest.ID:
			nearest = s
		}
	}

	return nearest, bestDist, found
}
