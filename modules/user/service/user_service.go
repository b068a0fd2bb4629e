package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"meetbook/core/errors"
	"meetbook/core/logger"
	"meetbook/core/storage"
	"meetbook/core/utils"
	"meetbook/modules/user/dto"
	"meetbook/modules/user/repository"

	"github.com/google/uuid"
)

type UserServiceInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, *errors.AppError)
	UploadPhoto(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (*dto.UploadPhotoResponse, *errors.AppError)
}

type UserService struct {
	repo     repository.UserRepositoryInterface
	uploader storage.Uploader
}

func NewUserService(repo repository.UserRepositoryInterface, uploader storage.Uploader) UserServiceInterface {
	return &UserService{repo: repo, uploader: uploader}
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, *errors.AppError) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load profile", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}
	return dto.ToProfileResponse(user), nil
}

func (s *UserService) UploadPhoto(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (*dto.UploadPhotoResponse, *errors.AppError) {
	if s.uploader == nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Photo storage is not configured", nil)
	}
	if len(data) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Photo file is empty", nil)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("users/%s/photo-%s%s", userID, utils.GenerateID(), ext)

	url, err := s.uploader.Upload(ctx, key, contentType, data)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upload photo", err)
	}

	if err := s.repo.UpdatePhotoURL(ctx, userID, url); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save photo URL", err)
	}

	logger.Info("UserService:UploadPhoto:Success", "user_id", userID, "key", key)
	return &dto.UploadPhotoResponse{PhotoURL: url}, nil
}
