package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"meetbook/core/logger"
	notifEntity "meetbook/modules/notification/entity"
	"meetbook/modules/notification/service"

	"github.com/hibiken/asynq"
)

// Handler consumes queue tasks and writes notification rows. It only reads
// booking results; the allocation itself has already committed.
type Handler struct {
	notifService *service.NotificationService
}

func NewHandler(notifService *service.NotificationService) *Handler {
	return &Handler{notifService: notifService}
}

// Register attaches task handlers to the worker mux.
func (h *Handler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeMeetingBooked, h.HandleMeetingBooked)
}

func (h *Handler) HandleMeetingBooked(ctx context.Context, t *asynq.Task) error {
	var payload MeetingBookedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		// Malformed payloads will never succeed; skip the retries.
		return fmt.Errorf("unmarshal %s payload: %w: %w", TypeMeetingBooked, err, asynq.SkipRetry)
	}

	window := fmt.Sprintf("%s to %s",
		payload.Start.Format(time.RFC3339), payload.End.Format(time.RFC3339))
	data := map[string]interface{}{
		"meeting_id": payload.MeetingID.String(),
		"code":       payload.Code,
		"start":      payload.Start.Format(time.RFC3339),
		"end":        payload.End.Format(time.RFC3339),
	}

	if err := h.notifService.Create(ctx, payload.HostID,
		"New booking", "A client booked "+window, notifEntity.TypeMeetingBooked, data); err != nil {
		return err
	}
	if err := h.notifService.Create(ctx, payload.ClientID,
		"Booking confirmed", "Your meeting "+payload.Code+" is confirmed for "+window, notifEntity.TypeMeetingBooked, data); err != nil {
		return err
	}

	logger.Info("Tasks:HandleMeetingBooked:Done", "meeting_id", payload.MeetingID)
	return nil
}
