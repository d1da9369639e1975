package geo

import "math"

const earthRadiusKm = 6371.0

// One degree of latitude spans at least this many kilometers anywhere on the
// sphere, so it gives a safe lower bound for the coarse pre-filter below.
const minKmPerLatDegree = 110.0

// HaversineDistanceKm returns the great-circle distance between two
// coordinate pairs in kilometers.
func HaversineDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// BeyondLatitudeBound reports whether two points are provably farther apart
// than radiusKm from their latitude separation alone. The great-circle
// distance is never smaller than the meridian distance between the two
// latitudes, so skipping candidates on this bound can never discard a point
// that is actually within the radius.
func BeyondLatitudeBound(lat1, lat2, radiusKm float64) bool {
	return math.Abs(lat2-lat1)*minKmPerLatDegree > radiusKm
}
