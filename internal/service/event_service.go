package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"campusevents/internal/cache"
	apperrors "campusevents/internal/errors"
	"campusevents/internal/model"
	"campusevents/internal/repository"
)

const (
	eventListCacheKey = "events:all"
	eventListCacheTTL = 5 * time.Minute
)

// EventService exposes catalog operations over event listings.
type EventService interface {
	Create(ctx context.Context, title, description, registrationDeadline string) (*model.Event, error)
	Get(ctx context.Context, id uint) (*model.Event, error)
	Update(ctx context.Context, id uint, title, description, registrationDeadline string) (*model.Event, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]model.Event, error)
}

type eventService struct {
	repo  repository.EventRepository
	cache *cache.Client
}

// NewEventService builds an EventService with repository and cache.
func NewEventService(repo repository.EventRepository, cache *cache.Client) EventService {
	return &eventService{repo: repo, cache: cache}
}

func (s *eventService) Create(ctx context.Context, title, description, registrationDeadline string) (*model.Event, error) {
	event := &model.Event{
		Title:                title,
		Description:          description,
		RegistrationDeadline: registrationDeadline,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	_ = s.cache.Delete(ctx, eventListCacheKey)
	return event, nil
}

func (s *eventService) Get(ctx context.Context, id uint) (*model.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id uint, title, description, registrationDeadline string) (*model.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Title = title
	event.Description = description
	event.RegistrationDeadline = registrationDeadline
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	_ = s.cache.Delete(ctx, eventListCacheKey)
	return event, nil
}

// Delete removes an event immediately. There is no soft delete or undo.
func (s *eventService) Delete(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrEventNotFound
	}
	_ = s.cache.Delete(ctx, eventListCacheKey)
	return nil
}

// List returns all events, served from the cache when warm. Both dashboards
// read through this path.
func (s *eventService) List(ctx context.Context) ([]model.Event, error) {
	if data, _ := s.cache.Get(ctx, eventListCacheKey); data != nil {
		var cached []model.Event
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(events); err == nil {
		_ = s.cache.Set(ctx, eventListCacheKey, payload, eventListCacheTTL)
	}
	return events, nil
}
