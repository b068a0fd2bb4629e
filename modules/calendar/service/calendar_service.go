package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"meetbook/core/cache"
	"meetbook/core/constants"
	"meetbook/core/errors"
	"meetbook/core/logger"
	bookingDto "meetbook/modules/booking/dto"
	bookingRepo "meetbook/modules/booking/repository"
	"meetbook/modules/calendar/dto"
	"meetbook/modules/calendar/repository"
	eventDto "meetbook/modules/event/dto"
	eventRepo "meetbook/modules/event/repository"
	userDto "meetbook/modules/user/dto"

	"github.com/google/uuid"
)

type CalendarServiceInterface interface {
	GetCalendar(ctx context.Context, userID uuid.UUID) (*dto.CalendarResponse, *errors.AppError)
}

type CalendarService struct {
	repo      repository.CalendarRepositoryInterface
	eventRepo eventRepo.EventRepositoryInterface
	cache     cache.Cache
}

func NewCalendarService(repo repository.CalendarRepositoryInterface, events eventRepo.EventRepositoryInterface, cache cache.Cache) CalendarServiceInterface {
	return &CalendarService{repo: repo, eventRepo: events, cache: cache}
}

// CacheKey names the cached calendar view of one user. Write paths that
// change what the calendar shows delete this key.
func CacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("calendar:%s", userID)
}

// GetCalendar merges the user's meetings with visible events. The result is
// a pure projection of stored data; a short-lived cache absorbs repeat reads.
func (s *CalendarService) GetCalendar(ctx context.Context, userID uuid.UUID) (*dto.CalendarResponse, *errors.AppError) {
	if s.cache != nil {
		if data, ok, err := s.cache.Get(ctx, CacheKey(userID)); err == nil && ok {
			var cached dto.CalendarResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		} else if err != nil {
			logger.Warn("CalendarService:GetCalendar:CacheGet", "error", err, "user_id", userID)
		}
	}

	meetingRows, err := s.repo.ListMeetingsForUser(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load meetings", err)
	}

	eventRows, err := s.eventRepo.ListWithRegistration(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load events", err)
	}

	resp := &dto.CalendarResponse{
		Meetings: make([]bookingDto.MeetingResponse, 0, len(meetingRows)),
		Events:   make([]eventDto.EventResponse, 0, len(eventRows)),
	}
	for i := range meetingRows {
		resp.Meetings = append(resp.Meetings, toMeetingResponse(&meetingRows[i]))
	}
	for i := range eventRows {
		resp.Events = append(resp.Events, eventDto.ToEventResponse(&eventRows[i]))
	}

	if s.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			ttl := time.Duration(constants.CalendarCacheTTLSeconds) * time.Second
			if err := s.cache.Set(ctx, CacheKey(userID), data, ttl); err != nil {
				logger.Warn("CalendarService:GetCalendar:CacheSet", "error", err, "user_id", userID)
			}
		}
	}
	return resp, nil
}

func toMeetingResponse(row *bookingRepo.MeetingDetailRow) bookingDto.MeetingResponse {
	return bookingDto.MeetingResponse{
		ID:   row.ID.String(),
		Code: row.Code,
		Slot: bookingDto.SlotResponse{
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
	}
}

func photoOrDefault(url *string) string {
	if url != nil && *url != "" {
		return *url
	}
	return constants.DefaultUserPhoto
}
