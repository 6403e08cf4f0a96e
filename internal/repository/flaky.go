package repository

import (
	"context"
	"errors"
	"fmt"

	"hirehub_backend/internal/model"
	"hirehub_backend/internal/util"
	"hirehub_backend/pkg/monitoring"
	"hirehub_backend/pkg/simnet"
)

// Simulated network boundary: decorators that wrap every store call with
// injected latency and occasional transient failures. Services see
// util.ErrTransient and surface it as retryable, never fatal.

func wrapInjected(err error) error {
	if errors.Is(err, simnet.ErrInjected) {
		monitoring.InjectedFailures.Inc()
		return fmt.Errorf("%w: %v", util.ErrTransient, err)
	}
	return err
}

type FlakyAssessmentStore struct {
	inner    AssessmentStore
	injector *simnet.Injector
}

func NewFlakyAssessmentStore(inner AssessmentStore, injector *simnet.Injector) *FlakyAssessmentStore {
	return &FlakyAssessmentStore{inner: inner, injector: injector}
}

func (s *FlakyAssessmentStore) GetByJob(ctx context.Context, jobID string) (*model.Assessment, error) {
	if err := s.injector.Do(ctx); err != nil {
		return nil, wrapInjected(err)
	}
	return s.inner.GetByJob(ctx, jobID)
}

func (s *FlakyAssessmentStore) EnsureByJob(ctx context.Context, jobID string) (*model.Assessment, error) {
	if err := s.injector.Do(ctx); err != nil {
		return nil, wrapInjected(err)
	}
	return s.inner.EnsureByJob(ctx, jobID)
}

func (s *FlakyAssessmentStore) Upsert(ctx context.Context, a *model.Assessment) (*model.Assessment, error) {
	if err := s.injector.Do(ctx); err != nil {
		return nil, wrapInjected(err)
	}
	return s.inner.Upsert(ctx, a)
}

func (s *FlakyAssessmentStore) RemoveByJob(ctx context.Context, jobID string) error {
	if err := s.injector.Do(ctx); err != nil {
		return wrapInjected(err)
	}
	return s.inner.RemoveByJob(ctx, jobID)
}

type FlakySubmissionStore struct {
	inner    SubmissionStore
	injector *simnet.Injector
}

func NewFlakySubmissionStore(inner SubmissionStore, injector *simnet.Injector) *FlakySubmissionStore {
	return &FlakySubmissionStore{inner: inner, injector: injector}
}

func (s *FlakySubmissionStore) Create(ctx context.Context, rec *model.SubmissionRecord) error {
	if err := s.injector.Do(ctx); err != nil {
		return wrapInjected(err)
	}
	return s.inner.Create(ctx, rec)
}

func (s *FlakySubmissionStore) FindByID(ctx context.Context, id string) (*model.SubmissionRecord, error) {
	if err := s.injector.Do(ctx); err != nil {
		return nil, wrapInjected(err)
	}
	return s.inner.FindByID(ctx, id)
}

func (s *FlakySubmissionStore) ListByJob(ctx context.Context, jobID string) ([]model.SubmissionRecord, error) {
	if err := s.injector.Do(ctx); err != nil {
		return nil, wrapInjected(err)
	}
	return s.inner.ListByJob(ctx, jobID)
}
