package models

// Booking reserves the [StartTime, EndTime) window on one space.
// Timestamps are kept in the "2006-01-02 15:04:05" form everywhere, so
// chronological order and lexicographic order agree.
type Booking struct {
	ID        int64  `json:"id"`
	SpaceID   int64  `json:"space_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
