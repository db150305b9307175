package repository

import (
	"context"

	"gorm.io/gorm"

	"campusevents/internal/model"
)

// RequestRepository defines event-request persistence operations.
type RequestRepository interface {
	Create(ctx context.Context, request *model.EventRequest) error
	FindByID(ctx context.Context, id uint) (*model.EventRequest, error)
	List(ctx context.Context) ([]model.EventRequest, error)
	ListByStudentID(ctx context.Context, studentID string) ([]model.EventRequest, error)
	UpdateStatus(ctx context.Context, id uint, status string) (int64, error)
}

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository builds a GORM-backed repository.
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *model.EventRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) FindByID(ctx context.Context, id uint) (*model.EventRequest, error) {
	var request model.EventRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) List(ctx context.Context) ([]model.EventRequest, error) {
	var requests []model.EventRequest
	if err := r.db.WithContext(ctx).Order("id").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) ListByStudentID(ctx context.Context, studentID string) ([]model.EventRequest, error) {
	var requests []model.EventRequest
	if err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Order("id").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus overwrites the status of a request and reports how many rows
// were affected. Zero rows means the id does not exist.
func (r *requestRepository) UpdateStatus(ctx context.Context, id uint, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.EventRequest{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}
