package service

import (
	"testing"

	"hirehub_backend/internal/model"
)

func choiceQuestion(id string, values ...string) model.Question {
	q := model.Question{ID: id, Type: model.SingleChoice}
	for _, v := range values {
		q.Choices = append(q.Choices, model.Choice{ID: v + "-id", Label: v, Value: v})
	}
	return q
}

func dependentQuestion(id, targetID, equals string) model.Question {
	return model.Question{
		ID:   id,
		Type: model.ShortText,
		Conditional: &model.ConditionalLogic{
			QuestionID: targetID,
			Equals:     model.ConditionMatch{One: equals},
		},
	}
}

func TestIsVisible_NoConditional(t *testing.T) {
	q := model.Question{ID: "q1", Type: model.ShortText}
	if !IsVisible(q, map[string]interface{}{}) {
		t.Fatalf("question without conditional must always be visible")
	}
}

func TestIsVisible_ScalarMatch(t *testing.T) {
	q := dependentQuestion("q2", "q1", "yes")

	if !IsVisible(q, map[string]interface{}{"q1": "yes"}) {
		t.Fatalf("expected visible on matching answer")
	}
	if IsVisible(q, map[string]interface{}{"q1": "no"}) {
		t.Fatalf("expected hidden on non-matching answer")
	}
}

func TestIsVisible_MissingTargetHides(t *testing.T) {
	q := dependentQuestion("q2", "q1", "yes")

	if IsVisible(q, map[string]interface{}{}) {
		t.Fatalf("unanswered target must hide the question")
	}
	if IsVisible(q, map[string]interface{}{"q1": nil}) {
		t.Fatalf("nil target must hide the question")
	}
}

func TestIsVisible_DanglingReferenceHides(t *testing.T) {
	// The referenced question was deleted; no answer will ever exist for it.
	q := dependentQuestion("q2", "gone", "yes")
	if IsVisible(q, map[string]interface{}{"q1": "yes"}) {
		t.Fatalf("dangling conditional reference must hide the question")
	}
}

func TestIsVisible_ListComparand(t *testing.T) {
	q := model.Question{
		ID:   "q2",
		Type: model.ShortText,
		Conditional: &model.ConditionalLogic{
			QuestionID: "q1",
			Equals:     model.ConditionMatch{Many: []string{"go", "rust"}},
		},
	}

	if !IsVisible(q, map[string]interface{}{"q1": "go"}) {
		t.Fatalf("scalar answer in comparand set must show the question")
	}
	if IsVisible(q, map[string]interface{}{"q1": "python"}) {
		t.Fatalf("scalar answer outside comparand set must hide the question")
	}
}

func TestIsVisible_ListAnswerIntersection(t *testing.T) {
	q := model.Question{
		ID:   "q2",
		Type: model.ShortText,
		Conditional: &model.ConditionalLogic{
			QuestionID: "q1",
			Equals:     model.ConditionMatch{Many: []string{"go", "rust"}},
		},
	}

	if !IsVisible(q, map[string]interface{}{"q1": []interface{}{"python", "rust"}}) {
		t.Fatalf("overlapping multi-choice answer must show the question")
	}
	if IsVisible(q, map[string]interface{}{"q1": []interface{}{"python", "java"}}) {
		t.Fatalf("disjoint multi-choice answer must hide the question")
	}
}

func TestIsVisible_ListAnswerScalarComparand(t *testing.T) {
	q := dependentQuestion("q2", "q1", "go")
	if !IsVisible(q, map[string]interface{}{"q1": []string{"go", "rust"}}) {
		t.Fatalf("list answer containing the comparand must show the question")
	}
}

func TestResetHiddenValues_CascadedReset(t *testing.T) {
	// a controls b, b controls c. Flipping a off must clear both b and c,
	// even though c's target is b, not a.
	questions := []model.Question{
		choiceQuestion("a", "yes", "no"),
		dependentQuestion("b", "a", "yes"),
		dependentQuestion("c", "b", "sure"),
	}

	values := map[string]interface{}{
		"a": "no",
		"b": "sure",
		"c": "stale text",
	}

	out := ResetHiddenValues(questions, values)
	if out["b"] != "" {
		t.Fatalf("b should be reset, got %v", out["b"])
	}
	if out["c"] != "" {
		t.Fatalf("c should be reset via cascade, got %v", out["c"])
	}
	if out["a"] != "no" {
		t.Fatalf("a must be untouched, got %v", out["a"])
	}
}

func TestResetHiddenValues_DoesNotMutateInput(t *testing.T) {
	questions := []model.Question{
		choiceQuestion("a", "yes", "no"),
		dependentQuestion("b", "a", "yes"),
	}
	values := map[string]interface{}{"a": "no", "b": "stale"}

	ResetHiddenValues(questions, values)
	if values["b"] != "stale" {
		t.Fatalf("input map must not be mutated, got %v", values["b"])
	}
}

func TestResetHiddenValues_CycleTerminates(t *testing.T) {
	// Two questions gating each other is a misconfiguration; the pass must
	// still terminate and leave both hidden and cleared.
	questions := []model.Question{
		dependentQuestion("a", "b", "x"),
		dependentQuestion("b", "a", "x"),
	}
	values := map[string]interface{}{"a": "x", "b": "y"}

	out := ResetHiddenValues(questions, values)
	if out["a"] != "" || out["b"] != "" {
		t.Fatalf("cyclic questions should both end up reset, got %v / %v", out["a"], out["b"])
	}
}
