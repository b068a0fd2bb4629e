package repository

import (
	"context"

	"meetbook/core/database"
	"meetbook/core/logger"
	"meetbook/core/params"
	"meetbook/modules/notification/entity"

	"github.com/google/uuid"
)

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, notif *entity.Notification) error
	GetByUserID(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, error)
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}

type NotificationRepository struct {
	DB database.IDatabase
}

func NewNotificationRepository(db database.IDatabase) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notif *entity.Notification) error {
	query := `
		INSERT INTO notifications (user_id, title, message, type, data, is_read)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		notif.UserID, notif.Title, notif.Message, notif.Type, notif.Data, notif.IsRead).
		Scan(&notif.ID, &notif.CreatedAt, &notif.UpdatedAt)
	if err != nil {
		logger.Error("NotificationRepository:Create", "error", err, "user_id", notif.UserID)
		return err
	}
	return nil
}

func (r *NotificationRepository) GetByUserID(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM notifications WHERE user_id = $1`
	if err := r.DB.GetContext(ctx, &total, countQuery, userID); err != nil {
		logger.Error("NotificationRepository:GetByUserID:Count", "error", err, "user_id", userID)
		return nil, err
	}

	query := `
		SELECT id, user_id, title, message, type, data, is_read, created_at, updated_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	var rows []entity.Notification
	if err := r.DB.SelectContext(ctx, &rows, query, userID, queryParams.PageSize, queryParams.Offset()); err != nil {
		logger.Error("NotificationRepository:GetByUserID", "error", err, "user_id", userID)
		return nil, err
	}

	totalPages := total / queryParams.PageSize
	if total%queryParams.PageSize != 0 {
		totalPages++
	}

	return &entity.PaginatedNotificationEntity{
		Items:      rows,
		Total:      total,
		Page:       queryParams.Page,
		PageSize:   queryParams.PageSize,
		TotalPages: totalPages,
	}, nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = true, updated_at = NOW() WHERE user_id = $1 AND is_read = false`
	if err := r.DB.ExecContext(ctx, query, userID); err != nil {
		logger.Error("NotificationRepository:MarkAllAsRead", "error", err, "user_id", userID)
		return err
	}
	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`
	if err := r.DB.GetContext(ctx, &count, query, userID); err != nil {
		logger.Error("NotificationRepository:CountUnread", "error", err, "user_id", userID)
		return 0, err
	}
	return count, nil
}
