package entity

import (
	"time"

	coreEntity "meetbook/core/entity"

	"github.com/google/uuid"
)

// Event is a public happening users can register for. Events show up in
// every user's calendar alongside their meetings.
type Event struct {
	HostID      uuid.UUID  `db:"host_id" json:"host_id"`
	Title       string     `db:"title" json:"title"`
	Slug        string     `db:"slug" json:"slug"`
	Description *string    `db:"description" json:"description,omitempty"`
	Address     *string    `db:"address" json:"address,omitempty"`
	EventDate   time.Time  `db:"event_date" json:"event_date"`
	coreEntity.BaseEntity
}

type EventRegistration struct {
	ID        uuid.UUID `db:"id" json:"id"`
	EventID   uuid.UUID `db:"event_id" json:"event_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// EventWithRegistration is the read shape for calendar/list queries: the
// event plus whether the viewing user is registered.
type EventWithRegistration struct {
	Event
	IsRegistered bool `db:"is_registered" json:"is_registered"`
}
