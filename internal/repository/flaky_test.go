package repository

import (
	"context"
	"errors"
	"testing"

	"hirehub_backend/internal/model"
	"hirehub_backend/internal/util"
	"hirehub_backend/pkg/simnet"
)

type stubAssessmentStore struct {
	calls int
}

func (s *stubAssessmentStore) GetByJob(ctx context.Context, jobID string) (*model.Assessment, error) {
	s.calls++
	return model.NewDefaultAssessment(jobID), nil
}

func (s *stubAssessmentStore) EnsureByJob(ctx context.Context, jobID string) (*model.Assessment, error) {
	return s.GetByJob(ctx, jobID)
}

func (s *stubAssessmentStore) Upsert(ctx context.Context, a *model.Assessment) (*model.Assessment, error) {
	s.calls++
	return a, nil
}

func (s *stubAssessmentStore) RemoveByJob(ctx context.Context, jobID string) error {
	s.calls++
	return nil
}

func TestFlakyAssessmentStore_InjectedFailureIsTransient(t *testing.T) {
	inner := &stubAssessmentStore{}
	store := NewFlakyAssessmentStore(inner, simnet.New(true, 0, 0, 0.999))

	var failure error
	for i := 0; i < 200; i++ {
		if _, err := store.GetByJob(context.Background(), "job-1"); err != nil {
			failure = err
			break
		}
	}
	if failure == nil {
		t.Fatalf("expected an injected failure")
	}
	if !errors.Is(failure, util.ErrTransient) {
		t.Fatalf("injected failures must map to ErrTransient, got %v", failure)
	}
}

func TestFlakyAssessmentStore_PassThroughWhenClean(t *testing.T) {
	inner := &stubAssessmentStore{}
	store := NewFlakyAssessmentStore(inner, simnet.New(true, 0, 0, 0))

	a, err := store.GetByJob(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("clean call must pass through: %v", err)
	}
	if a == nil || a.JobID != "job-1" {
		t.Fatalf("inner result not forwarded")
	}
	if inner.calls != 1 {
		t.Fatalf("inner store called %d times", inner.calls)
	}
}

func TestFlakySubmissionStore_FailedCallNeverReachesInner(t *testing.T) {
	fails := 0
	inner := &countingSubmissionStore{}
	store := NewFlakySubmissionStore(inner, simnet.New(true, 0, 0, 0.999))

	for i := 0; i < 200; i++ {
		if err := store.Create(context.Background(), &model.SubmissionRecord{}); err != nil {
			fails++
		}
	}
	if fails == 0 {
		t.Fatalf("expected injected failures")
	}
	if inner.creates != 200-fails {
		t.Fatalf("inner saw %d creates for %d clean calls", inner.creates, 200-fails)
	}
}

type countingSubmissionStore struct {
	creates int
}

func (s *countingSubmissionStore) Create(ctx context.Context, rec *model.SubmissionRecord) error {
	s.creates++
	return nil
}

func (s *countingSubmissionStore) FindByID(ctx context.Context, id string) (*model.SubmissionRecord, error) {
	return nil, util.ErrNotFound
}

func (s *countingSubmissionStore) ListByJob(ctx context.Context, jobID string) ([]model.SubmissionRecord, error) {
	return nil, nil
}
