package service

import (
	"context"
	stderrors "errors"
	"time"

	"meetbook/core/cache"
	"meetbook/core/constants"
	"meetbook/core/database"
	coreEntity "meetbook/core/entity"
	"meetbook/core/errors"
	"meetbook/core/logger"
	"meetbook/core/utils"
	availEntity "meetbook/modules/availability/entity"
	availRepo "meetbook/modules/availability/repository"
	"meetbook/modules/booking/dto"
	"meetbook/modules/booking/entity"
	"meetbook/modules/booking/repository"
	calendarService "meetbook/modules/calendar/service"
	"meetbook/modules/notification/tasks"
	userDto "meetbook/modules/user/dto"
	userRepo "meetbook/modules/user/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BookingServiceInterface interface {
	Book(ctx context.Context, clientID uuid.UUID, req *dto.BookMeetingRequest) (*dto.MeetingResponse, *errors.AppError)
	GetMeeting(ctx context.Context, meetingID uuid.UUID) (*dto.MeetingResponse, *errors.AppError)
}

type BookingService struct {
	db       database.IDatabase
	repo     repository.BookingRepositoryInterface
	ledger   availRepo.AvailabilityRepositoryInterface
	userRepo userRepo.UserRepositoryInterface
	cache    cache.Cache
	enqueuer tasks.EnqueuerInterface
}

func NewBookingService(
	db database.IDatabase,
	repo repository.BookingRepositoryInterface,
	ledger availRepo.AvailabilityRepositoryInterface,
	users userRepo.UserRepositoryInterface,
	cache cache.Cache,
	enqueuer tasks.EnqueuerInterface,
) BookingServiceInterface {
	return &BookingService{
		db:       db,
		repo:     repo,
		ledger:   ledger,
		userRepo: users,
		cache:    cache,
		enqueuer: enqueuer,
	}
}

// Book allocates [start, end) with the host for the client. The allocation
// runs as one transaction that first locks the host row, so concurrent
// bookings and declarations for the same host are serialized; a transaction
// aborted by the database for a detected conflict is retried once.
func (s *BookingService) Book(ctx context.Context, clientID uuid.UUID, req *dto.BookMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	hostID, err := uuid.Parse(req.HostID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "host_id must be a UUID", err)
	}

	start, end, appErr := parseRange(req.Start, req.End)
	if appErr != nil {
		return nil, appErr
	}
	requested, appErr := availEntity.NewInterval(start, end)
	if appErr != nil {
		return nil, appErr
	}

	if clientID == hostID {
		return nil, errors.NewAppError(errors.ErrSelfBooking, "Cannot book a meeting with yourself", nil)
	}

	var meeting *entity.Meeting
	for attempt := 1; attempt <= constants.BookingTxMaxAttempts; attempt++ {
		meeting = nil
		txErr := s.db.WithinTx(ctx, func(tx database.Querier) error {
			created, err := s.allocate(ctx, tx, clientID, hostID, requested)
			if err != nil {
				return err
			}
			meeting = created
			return nil
		})
		if txErr == nil {
			break
		}
		if isRetryableTxError(txErr) && attempt < constants.BookingTxMaxAttempts {
			logger.Warn("BookingService:Book:Retry",
				"attempt", attempt, "host_id", hostID, "error", txErr)
			continue
		}
		if isRetryableTxError(txErr) {
			return nil, errors.NewAppError(errors.ErrSlotConflict,
				"Booking conflicted with a concurrent request, please retry", txErr)
		}
		return nil, asAppError(txErr)
	}

	s.invalidateCalendars(ctx, hostID, clientID)

	if s.enqueuer != nil {
		payload := tasks.MeetingBookedPayload{
			MeetingID: meeting.ID,
			Code:      meeting.Code,
			HostID:    hostID,
			ClientID:  clientID,
			Start:     requested.Start,
			End:       requested.End,
		}
		// Notification delivery is best effort; the booking already committed.
		if err := s.enqueuer.EnqueueMeetingBooked(ctx, payload); err != nil {
			logger.Warn("BookingService:Book:EnqueueNotification", "error", err, "meeting_id", meeting.ID)
		}
	}

	logger.Info("BookingService:Book:Success",
		"meeting_id", meeting.ID, "host_id", hostID, "client_id", clientID,
		"start", requested.Start, "end", requested.End)
	return s.GetMeeting(ctx, meeting.ID)
}

// allocate performs the critical section: eligibility, covering lookup,
// conflict check, slot+meeting insert and ledger replacement, all against the
// same transaction handle.
func (s *BookingService) allocate(ctx context.Context, tx database.Querier, clientID, hostID uuid.UUID, requested availEntity.Interval) (*entity.Meeting, error) {
	host, err := s.userRepo.GetByIDForUpdate(ctx, tx, hostID)
	if err != nil {
		return nil, err
	}
	if host == nil {
		return nil, errors.NewAppError(errors.ErrHostNotFound, "Host not found", nil)
	}
	if !host.IsPartner() {
		return nil, errors.NewAppError(errors.ErrNotEligibleHost, "Host is not a partner", nil)
	}

	covering, err := s.ledger.FindCoveringForUpdate(ctx, tx, hostID, requested.Start, requested.End)
	if err != nil {
		return nil, err
	}
	if covering == nil {
		return nil, errors.NewAppErrorWithDetails(errors.ErrNoAvailability,
			"No declared availability covers the requested range",
			coreEntity.TimeRange{Start: requested.Start, End: requested.End})
	}

	// Availability and booked slots are separate ledgers; both must agree.
	conflict, err := s.repo.FindOverlappingSlotForUpdate(ctx, tx, hostID, requested.Start, requested.End)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, errors.NewAppErrorWithDetails(errors.ErrSlotConflict,
			"Requested range overlaps an existing booking",
			coreEntity.TimeRange{Start: conflict.StartTime, End: conflict.EndTime})
	}

	slot := &entity.MeetingSlot{
		HostID:    hostID,
		StartTime: requested.Start,
		EndTime:   requested.End,
	}
	if err := s.repo.InsertSlot(ctx, tx, slot); err != nil {
		return nil, err
	}

	meeting := &entity.Meeting{
		Code:     utils.GenerateID(),
		HostID:   hostID,
		ClientID: clientID,
		SlotID:   slot.ID,
	}
	if err := s.repo.InsertMeeting(ctx, tx, meeting); err != nil {
		return nil, err
	}

	before, after := covering.Interval().Subtract(requested)
	var remainders []availEntity.Interval
	if before != nil {
		remainders = append(remainders, *before)
	}
	if after != nil {
		remainders = append(remainders, *after)
	}
	if err := s.ledger.Replace(ctx, tx, covering, remainders...); err != nil {
		return nil, err
	}

	return meeting, nil
}

func (s *BookingService) GetMeeting(ctx context.Context, meetingID uuid.UUID) (*dto.MeetingResponse, *errors.AppError) {
	row, err := s.repo.GetMeetingDetail(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load meeting", err)
	}
	if row == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}

	return &dto.MeetingResponse{
		ID:   row.ID.String(),
		Code: row.Code,
		Slot: dto.SlotResponse{
			ID:    row.SlotID.String(),
			Start: row.SlotStart,
			End:   row.SlotEnd,
		},
		Host: userDto.UserSummary{
			ID:    row.HostID.String(),
			Email: row.HostEmail,
			Name:  row.HostName,
			Photo: photoOrDefault(row.HostPhoto),
		},
		Client: userDto.UserSummary{
			ID:    row.ClientID.String(),
			Email: row.ClientEmail,
			Name:  row.ClientName,
			Photo: photoOrDefault(row.ClientPhoto),
		},
	}, nil
}

func (s *BookingService) invalidateCalendars(ctx context.Context, userIDs ...uuid.UUID) {
	if s.cache == nil {
		return
	}
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, calendarService.CacheKey(id))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Warn("BookingService:InvalidateCalendars", "error", err)
	}
}

func photoOrDefault(url *string) string {
	if url != nil && *url != "" {
		return *url
	}
	return constants.DefaultUserPhoto
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

// isRetryableTxError matches Postgres aborts caused by a detected concurrent
// conflict: serialization failure (40001) and deadlock (40P01).
func isRetryableTxError(err error) bool {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}

func asAppError(err error) *errors.AppError {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return errors.NewAppError(errors.ErrInternalServer, "Unexpected storage failure", err)
}
