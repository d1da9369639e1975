package checkin

// RecordRow is a raw check-in listing row
type RecordRow struct {
	Timestamp    string `json:"timestamp"`
	LocationName string `json:"location_name"`
}

// ConvertedTimeRow pairs a check-in timestamp with its local-time conversion
type ConvertedTimeRow struct {
	OriginalTimestamp  string `json:"original_timestamp"`
	ConvertedTimestamp string `json:"converted_timestamp"`
}
