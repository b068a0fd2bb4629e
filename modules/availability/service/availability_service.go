package service

import (
	"context"
	stderrors "errors"
	"time"

	"meetbook/core/database"
	coreEntity "meetbook/core/entity"
	"meetbook/core/errors"
	"meetbook/core/logger"
	"meetbook/modules/availability/dto"
	"meetbook/modules/availability/entity"
	"meetbook/modules/availability/repository"
	userRepo "meetbook/modules/user/repository"

	"github.com/google/uuid"
)

type AvailabilityServiceInterface interface {
	Declare(ctx context.Context, hostID uuid.UUID, req *dto.DeclareAvailabilityRequest) (*dto.AvailabilityResponse, *errors.AppError)
	GetMyAvailability(ctx context.Context, userID uuid.UUID) (*dto.AvailabilityListResponse, *errors.AppError)
}

type AvailabilityService struct {
	db       database.IDatabase
	repo     repository.AvailabilityRepositoryInterface
	userRepo userRepo.UserRepositoryInterface
}

func NewAvailabilityService(db database.IDatabase, repo repository.AvailabilityRepositoryInterface, users userRepo.UserRepositoryInterface) AvailabilityServiceInterface {
	return &AvailabilityService{db: db, repo: repo, userRepo: users}
}

// Declare inserts a new free-time window for the host. The ledger stays
// disjoint: any overlap with an existing window of the same host is rejected.
// The host row lock serializes declarations with each other and with booking.
func (s *AvailabilityService) Declare(ctx context.Context, hostID uuid.UUID, req *dto.DeclareAvailabilityRequest) (*dto.AvailabilityResponse, *errors.AppError) {
	start, end, appErr := parseRange(req.Start, req.End)
	if appErr != nil {
		return nil, appErr
	}

	interval, appErr := entity.NewInterval(start, end)
	if appErr != nil {
		return nil, appErr
	}

	declared := &entity.AvailabilityInterval{
		HostID:    hostID,
		StartTime: interval.Start,
		EndTime:   interval.End,
	}

	err := s.db.WithinTx(ctx, func(tx database.Querier) error {
		host, err := s.userRepo.GetByIDForUpdate(ctx, tx, hostID)
		if err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "Failed to load host", err)
		}
		if host == nil {
			return errors.NewAppError(errors.ErrHostNotFound, "Host not found", nil)
		}
		if !host.IsPartner() {
			return errors.NewAppError(errors.ErrNotEligibleHost, "Only partners may declare availability", nil)
		}

		overlapping, err := s.repo.FindOverlappingForUpdate(ctx, tx, hostID, interval.Start, interval.End)
		if err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "Failed to check the ledger", err)
		}
		if len(overlapping) > 0 {
			return errors.NewAppErrorWithDetails(errors.ErrOverlapConflict,
				"Declared window overlaps existing availability",
				coreEntity.TimeRange{Start: overlapping[0].StartTime, End: overlapping[0].EndTime})
		}

		return s.repo.Insert(ctx, tx, declared)
	})
	if err != nil {
		return nil, asAppError(err)
	}

	logger.Info("AvailabilityService:Declare:Success",
		"host_id", hostID, "start", interval.Start, "end", interval.End)
	return dto.ToAvailabilityResponse(declared), nil
}

func (s *AvailabilityService) GetMyAvailability(ctx context.Context, userID uuid.UUID) (*dto.AvailabilityListResponse, *errors.AppError) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}

	resp := &dto.AvailabilityListResponse{
		IsPartner:    user.IsPartner(),
		Availability: []dto.AvailabilityResponse{},
	}
	if !resp.IsPartner {
		return resp, nil
	}

	rows, err := s.repo.ListByHost(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list availability", err)
	}
	for i := range rows {
		resp.Availability = append(resp.Availability, *dto.ToAvailabilityResponse(&rows[i]))
	}
	return resp, nil
}

func parseRange(startStr, endStr string) (time.Time, time.Time, *errors.AppError) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "start and end are required", nil)
	}
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "start must be RFC 3339", err)
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "end must be RFC 3339", err)
	}
	return start.UTC(), end.UTC(), nil
}

func asAppError(err error) *errors.AppError {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return errors.NewAppError(errors.ErrInternalServer, "Unexpected storage failure", err)
}
