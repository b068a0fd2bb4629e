package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityInterval is one declared free-time row of a host's ledger.
// Rows of the same host never overlap; a row is never updated in place, only
// deleted and replaced by residual rows when a booking consumes part of it.
type AvailabilityInterval struct {
	ID        uuid.UUID `db:"id" json:"id"`
	HostID    uuid.UUID `db:"host_id" json:"host_id"`
	StartTime time.Time `db:"start_time" json:"start"`
	EndTime   time.Time `db:"end_time" json:"end"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (a AvailabilityInterval) Interval() Interval {
	return Interval{Start: a.StartTime, End: a.EndTime}
}
