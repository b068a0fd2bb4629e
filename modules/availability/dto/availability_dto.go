package dto

import (
	"time"

	"meetbook/modules/availability/entity"
)

// DeclareAvailabilityRequest declares a new free-time window for the caller.
type DeclareAvailabilityRequest struct {
	Start string `json:"start"` // RFC 3339
	End   string `json:"end"`   // RFC 3339
}

type AvailabilityResponse struct {
	ID     string    `json:"id"`
	HostID string    `json:"host_id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// AvailabilityListResponse carries the partner flag plus the caller's
// current free windows.
type AvailabilityListResponse struct {
	IsPartner    bool                   `json:"is_partner"`
	Availability []AvailabilityResponse `json:"availability"`
}

func ToAvailabilityResponse(a *entity.AvailabilityInterval) *AvailabilityResponse {
	return &AvailabilityResponse{
		ID:     a.ID.String(),
		HostID: a.HostID.String(),
		Start:  a.StartTime,
		End:    a.EndTime,
	}
}
