package calendar

import (
	"fmt"
	"time"

	"internhub/internal/model"
)

// WorkedSeconds is the whole seconds between check-in and check-out.
// Missing times or a check-out before check-in give 0.
func WorkedSeconds(checkIn, checkOut *model.Timestamp) int64 {
	if checkIn == nil || checkOut == nil || checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	d := checkOut.Sub(*checkIn)
	if d <= 0 {
		return 0
	}
	return int64(d / time.Second)
}

// FormatDuration renders seconds as HH:MM:SS. Non-positive input renders
// as the empty string.
func FormatDuration(seconds int64) string {
	if seconds <= 0 {
		return ""
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
