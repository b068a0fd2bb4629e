package entity

import (
	"time"

	"github.com/google/uuid"
)

// MeetingSlot is a booked half-open time range carved out of a host's
// declared availability. Slots of the same host never overlap and a slot is
// immutable once created.
type MeetingSlot struct {
	ID        uuid.UUID `db:"id" json:"id"`
	HostID    uuid.UUID `db:"host_id" json:"host_id"`
	StartTime time.Time `db:"start_time" json:"start"`
	EndTime   time.Time `db:"end_time" json:"end"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Meeting links a host, a client and exactly one slot. Code is the short
// human-readable booking reference.
type Meeting struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	HostID    uuid.UUID `db:"host_id" json:"host_id"`
	ClientID  uuid.UUID `db:"client_id" json:"client_id"`
	SlotID    uuid.UUID `db:"slot_id" json:"slot_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
