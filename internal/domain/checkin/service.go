package checkin

import "context"

// CheckInService defines the raw check-in listings exposed to the dashboard
type CheckInService interface {
	// ListRecords returns every check-in with its captured location label
	ListRecords(ctx context.Context) ([]RecordRow, error)

	// ListConvertedTimes returns every check-in timestamp next to its
	// local-time conversion
	ListConvertedTimes(ctx context.Context) ([]ConvertedTimeRow, error)
}
