package dto

import (
	"time"

	userDto "meetbook/modules/user/dto"
)

// BookMeetingRequest asks to book [start, end) with the given host. The
// client is the authenticated caller.
type BookMeetingRequest struct {
	HostID string `json:"host_id"`
	Start  string `json:"start"` // RFC 3339
	End    string `json:"end"`   // RFC 3339
}

type SlotResponse struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type MeetingResponse struct {
	ID     string              `json:"id"`
	Code   string              `json:"code"`
	Slot   SlotResponse        `json:"slot"`
	Host   userDto.UserSummary `json:"host"`
	Client userDto.UserSummary `json:"client"`
}
