package site

import (
	"time"
)

// Site is a registered corporate location. Coordinates are stored as text by
// the administrative process and must be parsed defensively before use.
type Site struct {
	ID           string
	LocationName string
	Latitude     string
	Longitude    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
