package repository

import (
	"context"
	"errors"

	"hirehub_backend/internal/model"
	"hirehub_backend/internal/util"

	"gorm.io/gorm"
)

type CandidateRepository struct {
	DB *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{DB: db}
}

func (r *CandidateRepository) Create(ctx context.Context, c *model.Candidate) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *CandidateRepository) FindByID(ctx context.Context, id string) (*model.Candidate, error) {
	var c model.Candidate
	err := r.DB.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepository) List(ctx context.Context, page, limit int) ([]model.Candidate, int64, error) {
	var cs []model.Candidate
	var total int64
	query := r.DB.WithContext(ctx).Model(&model.Candidate{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&cs).Error
	return cs, total, err
}

func (r *CandidateRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&model.Candidate{}, "id = ?", id).Error
}
