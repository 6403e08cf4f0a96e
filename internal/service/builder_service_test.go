package service

import (
	"context"
	"testing"

	"hirehub_backend/internal/model"
)

func TestSession_ReusedPerJob(t *testing.T) {
	store := &fakeAssessmentStore{assessment: model.NewDefaultAssessment("job-1")}
	svc := NewBuilderService(store)

	first, err := svc.Session(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	second, err := svc.Session(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if first != second {
		t.Fatalf("repeated access must return the same session")
	}
}

func TestPersist_WritesCurrentDocument(t *testing.T) {
	store := &fakeAssessmentStore{assessment: model.NewDefaultAssessment("job-1")}
	svc := NewBuilderService(store)

	sess, err := svc.Session(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	title := "Edited"
	sess.UpdateMetadata(MetadataPatch{Title: &title})

	persisted, err := svc.Persist(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("persist: %v", err)
	}
	if persisted.Title != "Edited" {
		t.Fatalf("persisted document missing the edit, got %q", persisted.Title)
	}
	if store.assessment.Title != "Edited" {
		t.Fatalf("store did not receive the edited document")
	}
}

func TestReload_DiscardsUnsavedEdits(t *testing.T) {
	stored := model.NewDefaultAssessment("job-1")
	stored.Title = "Stored"
	store := &fakeAssessmentStore{assessment: stored}
	svc := NewBuilderService(store)

	sess, err := svc.Session(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	title := "Unsaved edit"
	sess.UpdateMetadata(MetadataPatch{Title: &title})

	a, err := svc.Reload(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if a.Title != "Stored" {
		t.Fatalf("reload must restore the stored document, got %q", a.Title)
	}
	if sess.Snapshot().Title != "Stored" {
		t.Fatalf("session must adopt the reloaded document")
	}
}

func TestDiscard_DropsSession(t *testing.T) {
	store := &fakeAssessmentStore{assessment: model.NewDefaultAssessment("job-1")}
	svc := NewBuilderService(store)

	first, err := svc.Session(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	svc.Discard("job-1")

	second, err := svc.Session(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if first == second {
		t.Fatalf("discard must drop the in-memory session")
	}
}
