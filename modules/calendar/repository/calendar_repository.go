package repository

import (
	"context"

	"meetbook/core/database"
	"meetbook/core/logger"
	bookingRepo "meetbook/modules/booking/repository"

	"github.com/google/uuid"
)

// CalendarRepositoryInterface reads the stored allocation results. It never
// writes; ordering is fixed to (slot start, meeting id) so repeated reads and
// pagination are deterministic.
type CalendarRepositoryInterface interface {
	ListMeetingsForUser(ctx context.Context, userID uuid.UUID) ([]bookingRepo.MeetingDetailRow, error)
}

type CalendarRepository struct {
	DB database.IDatabase
}

func NewCalendarRepository(db database.IDatabase) *CalendarRepository {
	return &CalendarRepository{DB: db}
}

func (r *CalendarRepository) ListMeetingsForUser(ctx context.Context, userID uuid.UUID) ([]bookingRepo.MeetingDetailRow, error) {
	query := `
		SELECT m.id, m.code, m.slot_id,
		       s.start_time AS slot_start, s.end_time AS slot_end,
		       h.id AS host_id, h.email AS host_email, h.name AS host_name, h.photo_url AS host_photo,
		       c.id AS client_id, c.email AS client_email, c.name AS client_name, c.photo_url AS client_photo
		FROM meetings m
		JOIN meeting_slots s ON s.id = m.slot_id
		JOIN users h ON h.id = m.host_id
		JOIN users c ON c.id = m.client_id
		WHERE m.host_id = $1 OR m.client_id = $1
		ORDER BY s.start_time ASC, m.id ASC
	`
	var rows []bookingRepo.MeetingDetailRow
	if err := r.DB.SelectContext(ctx, &rows, query, userID); err != nil {
		logger.Error("CalendarRepository:ListMeetingsForUser", "error", err, "user_id", userID)
		return nil, err
	}
	return rows, nil
}
