package repository

import (
	"context"
	"database/sql"
	"time"

	"meetbook/core/database"
	"meetbook/core/logger"
	"meetbook/modules/availability/entity"

	"github.com/google/uuid"
)

// AvailabilityRepositoryInterface is the per-host free-time ledger. The
// *ForUpdate readers and Replace take the caller's transaction handle so the
// whole allocation step commits or aborts as one unit.
type AvailabilityRepositoryInterface interface {
	Insert(ctx context.Context, q database.Querier, interval *entity.AvailabilityInterval) error
	FindOverlappingForUpdate(ctx context.Context, q database.Querier, hostID uuid.UUID, start, end time.Time) ([]entity.AvailabilityInterval, error)
	FindCoveringForUpdate(ctx context.Context, q database.Querier, hostID uuid.UUID, start, end time.Time) (*entity.AvailabilityInterval, error)
	Replace(ctx context.Context, q database.Querier, consumed *entity.AvailabilityInterval, remainders ...entity.Interval) error
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]entity.AvailabilityInterval, error)
}

type AvailabilityRepository struct {
	DB database.IDatabase
}

func NewAvailabilityRepository(db database.IDatabase) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

func (r *AvailabilityRepository) Insert(ctx context.Context, q database.Querier, interval *entity.AvailabilityInterval) error {
	query := `
		INSERT INTO availability_intervals (host_id, start_time, end_time)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := q.QueryRowContext(ctx, query, interval.HostID, interval.StartTime, interval.EndTime).
		Scan(&interval.ID, &interval.CreatedAt)
	if err != nil {
		logger.Error("AvailabilityRepository:Insert", "error", err, "host_id", interval.HostID)
		return err
	}
	return nil
}

func (r *AvailabilityRepository) FindOverlappingForUpdate(ctx context.Context, q database.Querier, hostID uuid.UUID, start, end time.Time) ([]entity.AvailabilityInterval, error) {
	// Half-open overlap: existing.start < end AND start < existing.end.
	query := `
		SELECT id, host_id, start_time, end_time, created_at
		FROM availability_intervals
		WHERE host_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time ASC
		FOR UPDATE
	`
	var rows []entity.AvailabilityInterval
	if err := q.SelectContext(ctx, &rows, query, hostID, start, end); err != nil {
		logger.Error("AvailabilityRepository:FindOverlappingForUpdate", "error", err, "host_id", hostID)
		return nil, err
	}
	return rows, nil
}

func (r *AvailabilityRepository) FindCoveringForUpdate(ctx context.Context, q database.Querier, hostID uuid.UUID, start, end time.Time) (*entity.AvailabilityInterval, error) {
	// The ledger is disjoint per host, so at most one row can cover the range.
	query := `
		SELECT id, host_id, start_time, end_time, created_at
		FROM availability_intervals
		WHERE host_id = $1 AND start_time <= $2 AND end_time >= $3
		FOR UPDATE
	`
	var row entity.AvailabilityInterval
	err := q.GetContext(ctx, &row, query, hostID, start, end)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AvailabilityRepository:FindCoveringForUpdate", "error", err, "host_id", hostID)
		return nil, err
	}
	return &row, nil
}

// Replace deletes the consumed row and inserts the residual windows within
// the caller's transaction.
func (r *AvailabilityRepository) Replace(ctx context.Context, q database.Querier, consumed *entity.AvailabilityInterval, remainders ...entity.Interval) error {
	if err := q.ExecContext(ctx, `DELETE FROM availability_intervals WHERE id = $1`, consumed.ID); err != nil {
		logger.Error("AvailabilityRepository:Replace:Delete", "error", err, "id", consumed.ID)
		return err
	}

	for _, rem := range remainders {
		residual := &entity.AvailabilityInterval{
			HostID:    consumed.HostID,
			StartTime: rem.Start,
			EndTime:   rem.End,
		}
		if err := r.Insert(ctx, q, residual); err != nil {
			return err
		}
	}
	return nil
}

func (r *AvailabilityRepository) ListByHost(ctx context.Context, hostID uuid.UUID) ([]entity.AvailabilityInterval, error) {
	query := `
		SELECT id, host_id, start_time, end_time, created_at
		FROM availability_intervals
		WHERE host_id = $1
		ORDER BY start_time ASC
	`
	var rows []entity.AvailabilityInterval
	if err := r.DB.SelectContext(ctx, &rows, query, hostID); err != nil {
		logger.Error("AvailabilityRepository:ListByHost", "error", err, "host_id", hostID)
		return nil, err
	}
	return rows, nil
}
