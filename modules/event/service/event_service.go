package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meetbook/core/cache"
	"meetbook/core/errors"
	"meetbook/core/logger"
	"meetbook/core/utils"
	calendarService "meetbook/modules/calendar/service"
	"meetbook/modules/event/dto"
	"meetbook/modules/event/entity"
	"meetbook/modules/event/repository"
	userRepo "meetbook/modules/user/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type EventServiceInterface interface {
	Create(ctx context.Context, hostID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	List(ctx context.Context, userID uuid.UUID) ([]dto.EventResponse, *errors.AppError)
	Register(ctx context.Context, eventID, userID uuid.UUID) *errors.AppError
	Unregister(ctx context.Context, eventID, userID uuid.UUID) *errors.AppError
}

type EventService struct {
	repo     repository.EventRepositoryInterface
	userRepo userRepo.UserRepositoryInterface
	cache    cache.Cache
}

func NewEventService(repo repository.EventRepositoryInterface, users userRepo.UserRepositoryInterface, cache cache.Cache) EventServiceInterface {
	return &EventService{repo: repo, userRepo: users, cache: cache}
}

func (s *EventService) Create(ctx context.Context, hostID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "title is required", nil)
	}
	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "event_date must be RFC 3339", err)
	}

	host, err := s.userRepo.GetByID(ctx, hostID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load host", err)
	}
	if host == nil {
		return nil, errors.NewAppError(errors.ErrHostNotFound, "Host not found", nil)
	}
	if !host.IsPartner() {
		return nil, errors.NewAppError(errors.ErrNotEligibleHost, "Only partners may create events", nil)
	}

	event := &entity.Event{
		HostID:    hostID,
		Title:     req.Title,
		Slug:      fmt.Sprintf("%s-%s", slug.Make(req.Title), strings.ToLower(utils.GenerateCode(5))),
		EventDate: eventDate.UTC(),
	}
	if req.Description != "" {
		event.Description = &req.Description
	}
	if req.Address != "" {
		event.Address = &req.Address
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	logger.Info("EventService:Create:Success", "event_id", event.ID, "slug", event.Slug)
	resp := dto.ToEventResponse(&entity.EventWithRegistration{Event: *event})
	return &resp, nil
}

func (s *EventService) List(ctx context.Context, userID uuid.UUID) ([]dto.EventResponse, *errors.AppError) {
	rows, err := s.repo.ListWithRegistration(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list events", err)
	}

	result := make([]dto.EventResponse, 0, len(rows))
	for i := range rows {
		result = append(result, dto.ToEventResponse(&rows[i]))
	}
	return result, nil
}

func (s *EventService) Register(ctx context.Context, eventID, userID uuid.UUID) *errors.AppError {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to load event", err)
	}
	if event == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if err := s.repo.Register(ctx, eventID, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to register", err)
	}
	s.invalidateCalendar(ctx, userID)
	return nil
}

func (s *EventService) Unregister(ctx context.Context, eventID, userID uuid.UUID) *errors.AppError {
	if err := s.repo.Unregister(ctx, eventID, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to unregister", err)
	}
	s.invalidateCalendar(ctx, userID)
	return nil
}

// Registration changes what the user's calendar shows, so drop their cached view.
func (s *EventService) invalidateCalendar(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, calendarService.CacheKey(userID)); err != nil {
		logger.Warn("EventService:InvalidateCalendar", "error", err, "user_id", userID)
	}
}
