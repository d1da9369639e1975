package employee

import (
	"time"
)

type Employee struct {
	ID          string
	FirstNameTH string
	LastNameTH  string
	FirstNameEN string
	LastNameEN  string
	Email       string
	SiteID      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
