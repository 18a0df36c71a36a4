package booking

import "spaceBooker/internal/models"

// Overlaps reports whether the [start, end) window collides with an
// existing booking. Intervals are half-open, so a window that starts
// exactly when another ends does not conflict.
func Overlaps(existing models.Booking, start, end string) bool {
	return start < existing.EndTime && end > existing.StartTime
}
