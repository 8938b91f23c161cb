package services

import (
	"context"

	"go.uber.org/zap"
	"tourcms/internal/models/db_models"
	"tourcms/internal/models/request_models"
	"tourcms/internal/repositories"
	"tourcms/pkg/utils"
)

type EventServiceInterface interface {
	List(ctx context.Context, req ListRequest) (*Page[db_models.Event], error)
	Get(ctx context.Context, id uint) (*db_models.Event, error)
	Create(ctx context.Context, req request_models.CreateEventRequest) (*db_models.Event, error)
	Update(ctx context.Context, id uint, req request_models.UpdateEventRequest) (*db_models.Event, error)
	Delete(ctx context.Context, id uint) error
}

type EventService struct {
	eventRepository  repositories.EventRepository
	regionRepository repositories.RegionRepository
	log              *zap.Logger
}

func NewEventService(eventRepository repositories.EventRepository, regionRepository repositories.RegionRepository, log *zap.Logger) EventServiceInterface {
	return &EventService{
		eventRepository:  eventRepository,
		regionRepository: regionRepository,
		log:              log.Named("events"),
	}
}

func (s *EventService) List(ctx context.Context, req ListRequest) (*Page[db_models.Event], error) {
	return listResource(ctx, s.log, eventSchema, req, s.eventRepository.List)
}

func (s *EventService) Get(ctx context.Context, id uint) (*db_models.Event, error) {
	return load(ctx, s.log, id, s.eventRepository.GetByID, utils.ErrEventNotFound)
}

func (s *EventService) Create(ctx context.Context, req request_models.CreateEventRequest) (*db_models.Event, error) {
	event := req.ToModel()
	if event.RegionID != nil {
		if err := ensureRegion(ctx, s.log, s.regionRepository, *event.RegionID); err != nil {
			return nil, err
		}
	}

	if err := s.eventRepository.Create(ctx, event); err != nil {
		return nil, storeError(s.log, "create event", 0, err, utils.ErrEventNotFound)
	}
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id uint, req request_models.UpdateEventRequest) (*db_models.Event, error) {
	event, err := load(ctx, s.log, id, s.eventRepository.GetByID, utils.ErrEventNotFound)
	if err != nil {
		return nil, err
	}
	if regionID, ok := req.NewRegionID(); ok {
		if err := ensureRegion(ctx, s.log, s.regionRepository, regionID); err != nil {
			return nil, err
		}
	}

	req.ApplyTo(event)
	if err := s.eventRepository.Update(ctx, event); err != nil {
		return nil, storeError(s.log, "update event", id, err, utils.ErrEventNotFound)
	}
	return load(ctx, s.log, id, s.eventRepository.GetByID, utils.ErrEventNotFound)
}

func (s *EventService) Delete(ctx context.Context, id uint) error {
	if err := s.eventRepository.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete event", id, err, utils.ErrEventNotFound)
	}
	return nil
}
