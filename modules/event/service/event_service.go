package service

import (
	"context"

	"meetpoll-api/core/errors"
	"meetpoll-api/core/utils"
	"meetpoll-api/modules/event/dto"
	"meetpoll-api/modules/event/entity"
	"meetpoll-api/modules/event/repository"
)

// EventService handles poll business logic
type EventService struct {
	repo repository.EventRepositoryInterface
}

// EventServiceInterface defines the service contract
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.CreateEventResponse, *errors.AppError)
	GetEventByID(ctx context.Context, id string) (*dto.EventDetailResponse, *errors.AppError)
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventRepositoryInterface) EventServiceInterface {
	return &EventService{repo: repo}
}

// CreateEvent persists a new poll with its candidate dates and time slots.
func (s *EventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.CreateEventResponse, *errors.AppError) {
	event := &entity.Event{
		ID:   req.ID,
		Name: req.Name,
	}
	if event.ID == "" {
		event.ID = utils.GenerateEventID()
	}
	if req.Creator != "" {
		event.Creator = &req.Creator
	}

	if err := s.repo.Create(ctx, event, req.Dates, req.TimeSlots); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	return &dto.CreateEventResponse{Success: true, ID: event.ID}, nil
}

// GetEventByID assembles the full poll view: event record, dates, time slots
// and all responses with their credential flag.
func (s *EventService) GetEventByID(ctx context.Context, id string) (*dto.EventDetailResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	dates, err := s.repo.GetDates(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	timeSlots, err := s.repo.GetTimeSlots(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	responses, err := s.repo.GetResponses(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}

	return dto.ToEventDetailResponse(event, dates, timeSlots, responses), nil
}
