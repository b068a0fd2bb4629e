package entity

import "time"

// TimeRange is the wire shape for a half-open [start, end) range, used both
// in responses and in conflict error details.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
