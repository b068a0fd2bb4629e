package repository

import (
	"context"
	"database/sql"

	"meetbook/core/database"
	"meetbook/core/logger"
	"meetbook/modules/user/entity"

	"github.com/google/uuid"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByIDForUpdate locks the user row for the duration of the caller's
	// transaction. Declaration and booking take this lock first, which gives
	// the per-host mutual exclusion the ledger invariants rely on.
	GetByIDForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.User, error)
	UpdatePhotoURL(ctx context.Context, id uuid.UUID, photoURL string) error
}

type UserRepository struct {
	DB database.IDatabase
}

func NewUserRepository(db database.IDatabase) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, email, password_hash, name, photo_url, role, referral_code, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (email, password_hash, name, role, referral_code)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.Name, user.Role, user.ReferralCode).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		logger.Error("UserRepository:Create", "error", err, "email", user.Email)
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user entity.User
	if err := r.DB.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByID", "error", err, "id", id)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user entity.User
	if err := r.DB.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByEmail", "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByIDForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`

	var user entity.User
	if err := q.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByIDForUpdate", "error", err, "id", id)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePhotoURL(ctx context.Context, id uuid.UUID, photoURL string) error {
	query := `UPDATE users SET photo_url = $2, updated_at = NOW() WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id, photoURL); err != nil {
		logger.Error("UserRepository:UpdatePhotoURL", "error", err, "id", id)
		return err
	}
	return nil
}
