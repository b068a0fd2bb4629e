package repository

import (
	"context"
	"database/sql"
	"time"

	"meetbook/core/database"
	"meetbook/core/logger"
	"meetbook/modules/booking/entity"

	"github.com/google/uuid"
)

// MeetingDetailRow is the assembled read shape for a booked meeting: the
// meeting, its slot, and compact host/client summaries in one query.
type MeetingDetailRow struct {
	ID          uuid.UUID `db:"id"`
	Code        string    `db:"code"`
	SlotID      uuid.UUID `db:"slot_id"`
	SlotStart   time.Time `db:"slot_start"`
	SlotEnd     time.Time `db:"slot_end"`
	HostID      uuid.UUID `db:"host_id"`
	HostEmail   string    `db:"host_email"`
	HostName    *string   `db:"host_name"`
	HostPhoto   *string   `db:"host_photo"`
	ClientID    uuid.UUID `db:"client_id"`
	ClientEmail string    `db:"client_email"`
	ClientName  *string   `db:"client_name"`
	ClientPhoto *string   `db:"client_photo"`
}

type BookingRepositoryInterface interface {
	// FindOverlappingSlotForUpdate returns one booked slot of the host that
	// overlaps [start, end), locked for the caller's transaction, or nil.
	FindOverlappingSlotForUpdate(ctx context.Context, q database.Querier, hostID uuid.UUID, start, end time.Time) (*entity.MeetingSlot, error)
	InsertSlot(ctx context.Context, q database.Querier, slot *entity.MeetingSlot) error
	InsertMeeting(ctx context.Context, q database.Querier, meeting *entity.Meeting) error
	GetMeetingDetail(ctx context.Context, meetingID uuid.UUID) (*MeetingDetailRow, error)
}

type BookingRepository struct {
	DB database.IDatabase
}

func NewBookingRepository(db database.IDatabase) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) FindOverlappingSlotForUpdate(ctx context.Context, q database.Querier, hostID uuid.UUID, start, end time.Time) (*entity.MeetingSlot, error) {
	query := `
		SELECT id, host_id, start_time, end_time, created_at
		FROM meeting_slots
		WHERE host_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time ASC
		LIMIT 1
		FOR UPDATE
	`
	var slot entity.MeetingSlot
	err := q.GetContext(ctx, &slot, query, hostID, start, end)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BookingRepository:FindOverlappingSlotForUpdate", "error", err, "host_id", hostID)
		return nil, err
	}
	return &slot, nil
}

func (r *BookingRepository) InsertSlot(ctx context.Context, q database.Querier, slot *entity.MeetingSlot) error {
	query := `
		INSERT INTO meeting_slots (host_id, start_time, end_time)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := q.QueryRowContext(ctx, query, slot.HostID, slot.StartTime, slot.EndTime).
		Scan(&slot.ID, &slot.CreatedAt)
	if err != nil {
		logger.Error("BookingRepository:InsertSlot", "error", err, "host_id", slot.HostID)
		return err
	}
	return nil
}

func (r *BookingRepository) InsertMeeting(ctx context.Context, q database.Querier, meeting *entity.Meeting) error {
	query := `
		INSERT INTO meetings (code, host_id, client_id, slot_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := q.QueryRowContext(ctx, query, meeting.Code, meeting.HostID, meeting.ClientID, meeting.SlotID).
		Scan(&meeting.ID, &meeting.CreatedAt)
	if err != nil {
		logger.Error("BookingRepository:InsertMeeting", "error", err, "host_id", meeting.HostID)
		return err
	}
	return nil
}

func (r *BookingRepository) GetMeetingDetail(ctx context.Context, meetingID uuid.UUID) (*MeetingDetailRow, error) {
	query := `
		SELECT m.id, m.code, m.slot_id,
		       s.start_time AS slot_start, s.end_time AS slot_end,
		       h.id AS host_id, h.email AS host_email, h.name AS host_name, h.photo_url AS host_photo,
		       c.id AS client_id, c.email AS client_email, c.name AS client_name, c.photo_url AS client_photo
		FROM meetings m
		JOIN meeting_slots s ON s.id = m.slot_id
		JOIN users h ON h.id = m.host_id
		JOIN users c ON c.id = m.client_id
		WHERE m.id = $1
	`
	var row MeetingDetailRow
	if err := r.DB.GetContext(ctx, &row, query, meetingID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BookingRepository:GetMeetingDetail", "error", err, "meeting_id", meetingID)
		return nil, err
	}
	return &row, nil
}
