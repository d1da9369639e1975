package checkin

import (
	"time"
)

// CheckIn is a single geolocated attendance event appended by the capture
// process. Records are read-only here; the engine never mutates or deletes
// them. Coordinates arrive as text and must be parsed defensively.
type CheckIn struct {
	ID           string
	EmployeeID   string
	Latitude     string
	Longitude    string
	LocationName *string
	Timestamp    *time.Time
	CreatedAt    time.Time
}
