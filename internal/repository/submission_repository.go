package repository

import (
	"context"
	"errors"

	"hirehub_backend/internal/model"
	"hirehub_backend/internal/util"

	"gorm.io/gorm"
)

type SubmissionStore interface {
	Create(ctx context.Context, s *model.SubmissionRecord) error
	FindByID(ctx context.Context, id string) (*model.SubmissionRecord, error)
	ListByJob(ctx context.Context, jobID string) ([]model.SubmissionRecord, error)
}

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *model.SubmissionRecord) error {
	return r.DB.WithContext(ctx).Create(s).Error
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id string) (*model.SubmissionRecord, error) {
	var s model.SubmissionRecord
	err := r.DB.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByJob returns the job's submissions, newest first.
func (r *SubmissionRepository) ListByJob(ctx context.Context, jobID string) ([]model.SubmissionRecord, error) {
	var ss []model.SubmissionRecord
	err := r.DB.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("submitted_at desc").
		Find(&ss).Error
	return ss, err
}
