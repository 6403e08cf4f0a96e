package repository

import (
	"context"
	"errors"

	"hirehub_backend/internal/model"
	"hirehub_backend/internal/util"

	"gorm.io/gorm"
)

type JobRepository struct {
	DB *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{DB: db}
}

func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.DB.WithContext(ctx).Create(job).Error
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*model.Job, error) {
	var job model.Job
	err := r.DB.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) List(ctx context.Context, page, limit int) ([]model.Job, int64, error) {
	var jobs []model.Job
	var total int64
	query := r.DB.WithContext(ctx).Model(&model.Job{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepository) Update(ctx context.Context, job *model.Job) error {
	return r.DB.WithContext(ctx).Save(job).Error
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&model.Job{}, "id = ?", id).Error
}
