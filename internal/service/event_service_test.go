package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"campusevents/internal/cache"
	apperrors "campusevents/internal/errors"
	"campusevents/internal/model"
)

// MockEventRepository is a mock implementation of EventRepository.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Update(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func TestCreateEvent(t *testing.T) {
	repo := new(MockEventRepository)
	svc := NewEventService(repo, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Event) bool {
		return e.Title == "Fest" && e.RegistrationDeadline == "2025-01-01"
	})).Return(nil)

	event, err := svc.Create(context.Background(), "Fest", "d", "2025-01-01")
	assert.NoError(t, err)
	assert.Equal(t, "Fest", event.Title)
	repo.AssertExpectations(t)
}

func TestUpdateEvent(t *testing.T) {
	repo := new(MockEventRepository)
	svc := NewEventService(repo, nil)

	repo.On("FindByID", mock.Anything, uint(2)).Return(&model.Event{
		ID:                   2,
		Title:                "Fest",
		Description:          "d",
		RegistrationDeadline: "2025-01-01",
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(e *model.Event) bool {
		return e.ID == 2 && e.Title == "Festival"
	})).Return(nil)

	event, err := svc.Update(context.Background(), 2, "Festival", "d2", "2025-02-01")
	assert.NoError(t, err)
	assert.Equal(t, "Festival", event.Title)
	assert.Equal(t, "2025-02-01", event.RegistrationDeadline)
}

func TestUpdateEventMissing(t *testing.T) {
	repo := new(MockEventRepository)
	svc := NewEventService(repo, nil)

	repo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), 9, "x", "y", "z")
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestDeleteEvent(t *testing.T) {
	repo := new(MockEventRepository)
	svc := NewEventService(repo, nil)

	repo.On("Delete", mock.Anything, uint(2)).Return(int64(1), nil)
	assert.NoError(t, svc.Delete(context.Background(), 2))
}

func TestDeleteEventMissing(t *testing.T) {
	repo := new(MockEventRepository)
	svc := NewEventService(repo, nil)

	repo.On("Delete", mock.Anything, uint(9)).Return(int64(0), nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), 9), apperrors.ErrEventNotFound)
}

func TestListEventsCacheMiss(t *testing.T) {
	repo := new(MockEventRepository)
	client, redisMock := redismock.NewClientMock()
	svc := NewEventService(repo, cache.NewFromClient(client))

	events := []model.Event{{ID: 1, Title: "Fest"}}
	payload, err := json.Marshal(events)
	assert.NoError(t, err)

	redisMock.ExpectGet("events:all").RedisNil()
	repo.On("List", mock.Anything).Return(events, nil)
	redisMock.ExpectSet("events:all", payload, eventListCacheTTL).SetVal("OK")

	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, events, got)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestListEventsCacheHit(t *testing.T) {
	repo := new(MockEventRepository)
	client, redisMock := redismock.NewClientMock()
	svc := NewEventService(repo, cache.NewFromClient(client))

	events := []model.Event{{ID: 1, Title: "Fest"}}
	payload, err := json.Marshal(events)
	assert.NoError(t, err)

	redisMock.ExpectGet("events:all").SetVal(string(payload))

	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, events, got)
	repo.AssertNotCalled(t, "List", mock.Anything)
}

func TestCreateEventInvalidatesCache(t *testing.T) {
	repo := new(MockEventRepository)
	client, redisMock := redismock.NewClientMock()
	svc := NewEventService(repo, cache.NewFromClient(client))

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	redisMock.ExpectDel("events:all").SetVal(1)

	_, err := svc.Create(context.Background(), "Fest", "d", "2025-01-01")
	assert.NoError(t, err)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
