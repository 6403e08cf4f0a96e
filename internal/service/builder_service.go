package service

import (
	"context"
	"sync"

	"hirehub_backend/internal/model"
	"hirehub_backend/internal/repository"
	"hirehub_backend/pkg/logger"

	"go.uber.org/zap"
)

// BuilderService hands out one BuilderSession per job and moves documents
// between sessions and the store. Mutations happen on the session; Persist
// is the explicit, separate step that writes a snapshot.
type BuilderService struct {
	store repository.AssessmentStore

	mu       sync.Mutex
	sessions map[string]*BuilderSession
}

func NewBuilderService(store repository.AssessmentStore) *BuilderService {
	return &BuilderService{
		store:    store,
		sessions: make(map[string]*BuilderSession),
	}
}

// Session returns the open session for a job, loading (or lazily creating)
// the document on first access.
func (s *BuilderService) Session(ctx context.Context, jobID string) (*BuilderSession, error) {
	s.mu.Lock()
	sess, ok := s.sessions[jobID]
	s.mu.Unlock()
	if ok {
		return sess, nil
	}

	a, err := s.store.EnsureByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another caller may have opened the session while we were loading;
	// theirs wins so both see the same document.
	if existing, ok := s.sessions[jobID]; ok {
		return existing, nil
	}
	sess = NewBuilderSession(a)
	s.sessions[jobID] = sess
	return sess, nil
}

// Persist writes a snapshot of the session's document. The snapshot is
// taken at call time, so mutations racing with the write are safe; the
// persisted result is only adopted back into the session if no newer
// load or persist has started meanwhile.
func (s *BuilderService) Persist(ctx context.Context, jobID string) (*model.Assessment, error) {
	sess, err := s.Session(ctx, jobID)
	if err != nil {
		return nil, err
	}

	token := sess.NextToken()
	snapshot := sess.Snapshot()
	persisted, err := s.store.Upsert(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	if !sess.Adopt(persisted, token) {
		logger.Log.Debug("discarding superseded assessment persist", zap.String("jobId", jobID))
	}
	return persisted, nil
}

// Reload discards unsaved edits and reloads the session's document from the
// store. A reload superseded by a newer reload or persist is discarded.
func (s *BuilderService) Reload(ctx context.Context, jobID string) (*model.Assessment, error) {
	sess, err := s.Session(ctx, jobID)
	if err != nil {
		return nil, err
	}

	token := sess.NextToken()
	a, err := s.store.EnsureByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !sess.Adopt(a, token) {
		logger.Log.Debug("discarding superseded assessment load", zap.String("jobId", jobID))
	}
	return sess.Snapshot(), nil
}

// Discard drops the in-memory session, abandoning unsaved edits.
func (s *BuilderService) Discard(jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, jobID)
}
