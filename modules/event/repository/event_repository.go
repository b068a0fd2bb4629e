package repository

import (
	"context"
	"database/sql"

	"meetbook/core/database"
	"meetbook/core/logger"
	"meetbook/modules/event/entity"

	"github.com/google/uuid"
)

type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	ListWithRegistration(ctx context.Context, userID uuid.UUID) ([]entity.EventWithRegistration, error)
	Register(ctx context.Context, eventID, userID uuid.UUID) error
	Unregister(ctx context.Context, eventID, userID uuid.UUID) error
}

type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (host_id, title, slug, description, address, event_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		event.HostID, event.Title, event.Slug, event.Description, event.Address, event.EventDate).
		Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		logger.Error("EventRepository:Create", "error", err, "host_id", event.HostID)
		return err
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT id, host_id, title, slug, description, address, event_date, created_at, updated_at
		FROM events WHERE id = $1
	`
	var event entity.Event
	if err := r.DB.GetContext(ctx, &event, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID", "error", err, "id", id)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) ListWithRegistration(ctx context.Context, userID uuid.UUID) ([]entity.EventWithRegistration, error) {
	query := `
		SELECT e.id, e.host_id, e.title, e.slug, e.description, e.address, e.event_date,
		       e.created_at, e.updated_at,
		       EXISTS (
		           SELECT 1 FROM event_registrations r
		           WHERE r.event_id = e.id AND r.user_id = $1
		       ) AS is_registered
		FROM events e
		ORDER BY e.event_date ASC, e.id ASC
	`
	var rows []entity.EventWithRegistration
	if err := r.DB.SelectContext(ctx, &rows, query, userID); err != nil {
		logger.Error("EventRepository:ListWithRegistration", "error", err, "user_id", userID)
		return nil, err
	}
	return rows, nil
}

func (r *EventRepository) Register(ctx context.Context, eventID, userID uuid.UUID) error {
	// Registering twice is a no-op.
	query := `
		INSERT INTO event_registrations (event_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (event_id, user_id) DO NOTHING
	`
	if err := r.DB.ExecContext(ctx, query, eventID, userID); err != nil {
		logger.Error("EventRepository:Register", "error", err, "event_id", eventID, "user_id", userID)
		return err
	}
	return nil
}

func (r *EventRepository) Unregister(ctx context.Context, eventID, userID uuid.UUID) error {
	query := `DELETE FROM event_registrations WHERE event_id = $1 AND user_id = $2`
	if err := r.DB.ExecContext(ctx, query, eventID, userID); err != nil {
		logger.Error("EventRepository:Unregister", "error", err, "event_id", eventID, "user_id", userID)
		return err
	}
	return nil
}
