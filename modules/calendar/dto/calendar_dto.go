package dto

import (
	bookingDto "meetbook/modules/booking/dto"
	eventDto "meetbook/modules/event/dto"
)

// CalendarResponse is the merged calendar view of one user: their meetings
// (as host or client) sorted by slot start, plus visible events.
type CalendarResponse struct {
	Meetings []bookingDto.MeetingResponse `json:"meetings"`
	Events   []eventDto.EventResponse    `json:"events"`
}
