package tasks

import (
	"context"
	"encoding/json"
	"time"

	"meetbook/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeMeetingBooked = "meeting:booked"

// MeetingBookedPayload is handed to the notification worker after a booking
// commits. It is a downstream read-only copy of the allocation result.
type MeetingBookedPayload struct {
	MeetingID uuid.UUID `json:"meeting_id"`
	Code      string    `json:"code"`
	HostID    uuid.UUID `json:"host_id"`
	ClientID  uuid.UUID `json:"client_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// EnqueuerInterface is what write-path services use to hand work to the
// background queue.
type EnqueuerInterface interface {
	EnqueueMeetingBooked(ctx context.Context, payload MeetingBookedPayload) error
}

type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) EnqueueMeetingBooked(ctx context.Context, payload MeetingBookedPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeMeetingBooked, data, asynq.MaxRetry(3), asynq.Timeout(30*time.Second))
	info, err := e.client.EnqueueContext(ctx, task)
	if err != nil {
		logger.Error("Enqueuer:EnqueueMeetingBooked", "error", err, "meeting_id", payload.MeetingID)
		return err
	}

	logger.Debug("Enqueuer:EnqueueMeetingBooked:Queued", "task_id", info.ID, "meeting_id", payload.MeetingID)
	return nil
}
