package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "campusevents/internal/errors"
	"campusevents/internal/model"
	"campusevents/internal/monitoring"
	"campusevents/internal/repository"
)

// SubmitRequestInput carries the seven fields of a student's submission.
type SubmitRequestInput struct {
	EventTitle        string
	Department        string
	StudentID         string
	EventDescription  string
	RehearsalDate     string
	ParticipantsNames string
	PracticeTiming    string
}

// RequestService manages the event-request lifecycle.
type RequestService interface {
	Submit(ctx context.Context, input SubmitRequestInput) (*model.EventRequest, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	List(ctx context.Context) ([]model.EventRequest, error)
	ListByStudentID(ctx context.Context, studentID string) ([]model.EventRequest, error)
}

type requestService struct {
	repo repository.RequestRepository
}

// NewRequestService creates a new request service.
func NewRequestService(repo repository.RequestRepository) RequestService {
	return &requestService{repo: repo}
}

// Submit inserts a new request. Status always starts at pending; the submitted
// student_id is stored as given, it is not cross-checked against the session.
func (s *requestService) Submit(ctx context.Context, input SubmitRequestInput) (*model.EventRequest, error) {
	request := &model.EventRequest{
		EventTitle:        input.EventTitle,
		Department:        input.Department,
		StudentID:         input.StudentID,
		EventDescription:  input.EventDescription,
		RehearsalDate:     input.RehearsalDate,
		ParticipantsNames: input.ParticipantsNames,
		PracticeTiming:    input.PracticeTiming,
		Status:            model.StatusPending,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create event request: %w", err)
	}

	monitoring.RecordRequestSubmitted()
	return request, nil
}

// UpdateStatus applies an admin decision. The status must belong to the known
// set and the request must exist; both are rejected at this boundary rather
// than persisting arbitrary values.
func (s *requestService) UpdateStatus(ctx context.Context, id uint, status string) error {
	parsed, ok := model.ParseStatus(status)
	if !ok {
		return apperrors.ErrInvalidStatus
	}

	// Existence is checked explicitly: MySQL reports zero affected rows when
	// the new status equals the current one, so RowsAffected alone cannot
	// distinguish a missing id from an idempotent update.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRequestNotFound
		}
		return err
	}

	if _, err := s.repo.UpdateStatus(ctx, id, parsed); err != nil {
		return fmt.Errorf("update request status: %w", err)
	}

	monitoring.RecordStatusTransition(parsed)
	return nil
}

func (s *requestService) List(ctx context.Context) ([]model.EventRequest, error) {
	return s.repo.List(ctx)
}

func (s *requestService) ListByStudentID(ctx context.Context, studentID string) ([]model.EventRequest, error) {
	return s.repo.ListByStudentID(ctx, studentID)
}
