package checkin

import (
	"context"
	"time"
)

// CheckInRepository defines read access to captured check-in events
type CheckInRepository interface {
	// List returns check-ins whose timestamp falls in [from, to). Records
	// with a NULL timestamp are not returned.
	List(ctx context.Context, from, to time.Time) ([]CheckIn, error)
}
