package service

import (
	"context"
	"encoding/json"
	"time"

	"hirehub_backend/internal/model"
	"hirehub_backend/internal/repository"
	"hirehub_backend/internal/util"
	"hirehub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const assessmentCacheTTL = 5 * time.Minute

// AssessmentService serves the candidate-facing document reads and the
// full-replace write. Reads go through a redis cache; every write
// invalidates it.
type AssessmentService struct {
	Store repository.AssessmentStore
	Redis *redis.Client
}

func NewAssessmentService(store repository.AssessmentStore, rdb *redis.Client) *AssessmentService {
	return &AssessmentService{Store: store, Redis: rdb}
}

func assessmentCacheKey(jobID string) string {
	return "assessment:job:" + jobID
}

// GetForJob returns the job's assessment, creating a seeded default on
// first access.
func (s *AssessmentService) GetForJob(ctx context.Context, jobID string) (*model.Assessment, error) {
	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, assessmentCacheKey(jobID)).Bytes(); err == nil {
			var a model.Assessment
			if json.Unmarshal(raw, &a) == nil {
				return &a, nil
			}
		}
	}

	a, err := s.Store.EnsureByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	s.cache(ctx, a)
	return a, nil
}

// Replace overwrites the job's full document, preserving record identity:
// the stored ID, job reference and creation timestamp are immutable.
func (s *AssessmentService) Replace(ctx context.Context, jobID string, incoming *model.Assessment) (*model.Assessment, error) {
	if incoming == nil {
		return nil, util.ErrMalformedPayload
	}
	if incoming.JobID != "" && incoming.JobID != jobID {
		return nil, util.ErrMalformedPayload
	}

	existing, err := s.Store.EnsureByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	incoming.ID = existing.ID
	incoming.JobID = existing.JobID
	incoming.CreatedAt = existing.CreatedAt

	persisted, err := s.Store.Upsert(ctx, incoming)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, jobID)
	return persisted, nil
}

// RemoveForJob deletes the job's assessment and its submission records.
func (s *AssessmentService) RemoveForJob(ctx context.Context, jobID string) error {
	if err := s.Store.RemoveByJob(ctx, jobID); err != nil {
		return err
	}
	s.invalidate(ctx, jobID)
	return nil
}

func (s *AssessmentService) cache(ctx context.Context, a *model.Assessment) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(a)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, assessmentCacheKey(a.JobID), raw, assessmentCacheTTL).Err(); err != nil {
		logger.Log.Warn("assessment cache write failed", zap.Error(err))
	}
}

func (s *AssessmentService) invalidate(ctx context.Context, jobID string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, assessmentCacheKey(jobID)).Err(); err != nil {
		logger.Log.Warn("assessment cache invalidation failed", zap.Error(err))
	}
}
