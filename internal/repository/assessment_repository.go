package repository

import (
	"context"
	"errors"
	"time"

	"hirehub_backend/internal/model"
	"hirehub_backend/internal/util"

	"gorm.io/gorm"
)

// AssessmentStore is the persisted-state boundary for assessment documents,
// keyed by job identifier. The simnet decorator wraps this interface.
type AssessmentStore interface {
	GetByJob(ctx context.Context, jobID string) (*model.Assessment, error)
	EnsureByJob(ctx context.Context, jobID string) (*model.Assessment, error)
	Upsert(ctx context.Context, a *model.Assessment) (*model.Assessment, error)
	RemoveByJob(ctx context.Context, jobID string) error
}

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) GetByJob(ctx context.Context, jobID string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.WithContext(ctx).Where("job_id = ?", jobID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// EnsureByJob returns the existing document or lazily creates and persists
// a seeded default for the job.
func (r *AssessmentRepository) EnsureByJob(ctx context.Context, jobID string) (*model.Assessment, error) {
	a, err := r.GetByJob(ctx, jobID)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, util.ErrNotFound) {
		return nil, err
	}

	a = model.NewDefaultAssessment(jobID)
	if err := r.DB.WithContext(ctx).Create(a).Error; err != nil {
		// A concurrent ensure may have won the race on the unique job key.
		if existing, getErr := r.GetByJob(ctx, jobID); getErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return a, nil
}

// Upsert renormalizes all order fields, refreshes the update timestamp and
// writes the full document. Last write wins.
func (r *AssessmentRepository) Upsert(ctx context.Context, a *model.Assessment) (*model.Assessment, error) {
	a.Normalize()
	a.UpdatedAt = time.Now()
	if err := r.DB.WithContext(ctx).Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// RemoveByJob deletes the job's assessment and cascades to its submission
// records.
func (r *AssessmentRepository) RemoveByJob(ctx context.Context, jobID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", jobID).Delete(&model.Assessment{}).Error; err != nil {
			return err
		}
		return tx.Where("job_id = ?", jobID).Delete(&model.SubmissionRecord{}).Error
	})
}
