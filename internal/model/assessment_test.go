package model

import (
	"encoding/json"
	"testing"
)

func TestConditionMatch_SingleValueForm(t *testing.T) {
	var logic ConditionalLogic
	if err := json.Unmarshal([]byte(`{"questionId":"q1","equals":"yes"}`), &logic); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if logic.Equals.One != "yes" || logic.Equals.Many != nil {
		t.Fatalf("expected scalar comparand, got %+v", logic.Equals)
	}

	out, err := json.Marshal(logic)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"questionId":"q1","equals":"yes"}` {
		t.Fatalf("scalar form must round-trip unchanged, got %s", out)
	}
}

func TestConditionMatch_ListForm(t *testing.T) {
	var logic ConditionalLogic
	if err := json.Unmarshal([]byte(`{"questionId":"q1","equals":["a","b"]}`), &logic); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if logic.Equals.One != "" || len(logic.Equals.Many) != 2 {
		t.Fatalf("expected list comparand, got %+v", logic.Equals)
	}

	out, err := json.Marshal(logic)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"questionId":"q1","equals":["a","b"]}` {
		t.Fatalf("list form must round-trip unchanged, got %s", out)
	}
}

func TestConditionMatch_RejectsOtherShapes(t *testing.T) {
	var m ConditionMatch
	if err := json.Unmarshal([]byte(`{"value":"yes"}`), &m); err == nil {
		t.Fatalf("object comparand must be rejected")
	}
	if err := json.Unmarshal([]byte(`42`), &m); err == nil {
		t.Fatalf("numeric comparand must be rejected")
	}
}

func TestNormalize_DenseOrders(t *testing.T) {
	a := Assessment{
		Sections: SectionList{
			{ID: "s1", Order: 7, Questions: []Question{{ID: "q1", Order: 9}, {ID: "q2", Order: 3}}},
			{ID: "s2", Order: 2},
		},
	}
	a.Normalize()

	if a.Sections[0].Order != 0 || a.Sections[1].Order != 1 {
		t.Fatalf("section orders not normalized: %d %d", a.Sections[0].Order, a.Sections[1].Order)
	}
	if a.Sections[0].Questions[0].Order != 0 || a.Sections[0].Questions[1].Order != 1 {
		t.Fatalf("question orders not normalized")
	}
}

func TestNewDefaultAssessment(t *testing.T) {
	a := NewDefaultAssessment("job-1")

	if a.JobID != "job-1" {
		t.Fatalf("job id not set")
	}
	if a.ID == "" {
		t.Fatalf("assessment must be identified at creation")
	}
	if a.Status != StatusDraft {
		t.Fatalf("new assessments start as drafts, got %s", a.Status)
	}
	if len(a.Sections) != 2 {
		t.Fatalf("expected 2 seeded sections, got %d", len(a.Sections))
	}

	seen := map[string]bool{}
	for si, sec := range a.Sections {
		if sec.Order != si {
			t.Fatalf("seeded section %d has order %d", si, sec.Order)
		}
		for _, q := range sec.Questions {
			if q.ID == "" {
				t.Fatalf("seeded question without identifier")
			}
			if seen[q.ID] {
				t.Fatalf("duplicate question identifier %s", q.ID)
			}
			seen[q.ID] = true
			if q.Type.IsChoice() && len(q.Choices) < 2 {
				t.Fatalf("choice question %s seeded with %d choices", q.ID, len(q.Choices))
			}
		}
	}
}

func TestFindQuestion(t *testing.T) {
	a := NewDefaultAssessment("job-1")
	want := a.Sections[1].Questions[0]

	q, sec := a.FindQuestion(want.ID)
	if q == nil || q.ID != want.ID {
		t.Fatalf("question not found")
	}
	if sec == nil || sec.ID != a.Sections[1].ID {
		t.Fatalf("wrong owning section")
	}

	if q, _ := a.FindQuestion("missing"); q != nil {
		t.Fatalf("expected nil for unknown identifier")
	}
}
