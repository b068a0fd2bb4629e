package dto

import (
	"time"

	"meetbook/modules/event/entity"
)

type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Address     string `json:"address"`
	EventDate   string `json:"event_date"` // RFC 3339
}

type EventResponse struct {
	ID           string    `json:"id"`
	HostID       string    `json:"host_id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description,omitempty"`
	Address      *string   `json:"address,omitempty"`
	EventDate    time.Time `json:"event_date"`
	IsRegistered bool      `json:"is_registered"`
}

func ToEventResponse(e *entity.EventWithRegistration) EventResponse {
	return EventResponse{
		ID:           e.ID.String(),
		HostID:       e.HostID.String(),
		Title:        e.Title,
		Slug:         e.Slug,
		Description:  e.Description,
		Address:      e.Address,
		EventDate:    e.EventDate,
		IsRegistered: e.IsRegistered,
	}
}
