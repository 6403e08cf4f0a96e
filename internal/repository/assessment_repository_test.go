package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hirehub_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// newDryRunDB builds a gorm handle that renders statements without a live
// connection, so repository write logic can be exercised in isolation.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return db
}

func TestUpsert_RenormalizesOrdersBeforeWrite(t *testing.T) {
	repo := NewAssessmentRepository(newDryRunDB(t))

	a := model.NewDefaultAssessment("job-1")
	a.Sections[0].Order = 7
	a.Sections[1].Order = 3
	a.Sections[0].Questions[0].Order = 9
	a.Sections[0].Questions[1].Order = 4

	persisted, err := repo.Upsert(context.Background(), a)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	for si, sec := range persisted.Sections {
		if sec.Order != si {
			t.Fatalf("section %d written with order %d", si, sec.Order)
		}
		for qi, q := range sec.Questions {
			if q.Order != qi {
				t.Fatalf("question %d in section %d written with order %d", qi, si, q.Order)
			}
		}
	}
	if persisted.UpdatedAt.IsZero() {
		t.Fatalf("update timestamp not refreshed")
	}
}

func TestUpsert_RepeatChangesOnlyUpdatedAt(t *testing.T) {
	repo := NewAssessmentRepository(newDryRunDB(t))
	a := model.NewDefaultAssessment("job-1")

	first, err := repo.Upsert(context.Background(), a)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	firstStamp := first.UpdatedAt
	before := assessmentStateWithoutStamp(t, first)

	time.Sleep(time.Millisecond)
	second, err := repo.Upsert(context.Background(), a)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if !second.UpdatedAt.After(firstStamp) {
		t.Fatalf("repeated upsert must move the update timestamp forward")
	}
	if after := assessmentStateWithoutStamp(t, second); after != before {
		t.Fatalf("repeated upsert changed more than the update timestamp:\nbefore: %s\nafter:  %s", before, after)
	}
}

// assessmentStateWithoutStamp renders the document with the update
// timestamp zeroed, so two writes of the same value compare equal.
func assessmentStateWithoutStamp(t *testing.T, a *model.Assessment) string {
	t.Helper()
	c := *a
	c.UpdatedAt = time.Time{}
	raw, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(raw)
}
