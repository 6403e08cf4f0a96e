package service

import (
	"strings"
	"testing"

	"hirehub_backend/internal/model"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

// screeningQuestions builds the question set used across validator tests:
// a required yes/no gate, a follow-up shown only on "yes", a bounded
// numeric, and a capped text field.
func screeningQuestions() []model.Question {
	return []model.Question{
		{
			ID:       "authorized",
			Type:     model.SingleChoice,
			Label:    "Work authorization",
			Required: true,
			Choices: []model.Choice{
				{ID: "c1", Label: "Yes", Value: "yes"},
				{ID: "c2", Label: "No", Value: "no"},
			},
		},
		{
			ID:       "visa_details",
			Type:     model.ShortText,
			Label:    "Visa details",
			Required: true,
			Conditional: &model.ConditionalLogic{
				QuestionID: "authorized",
				Equals:     model.ConditionMatch{One: "no"},
			},
			Validation: model.ValidationRules{MaxLength: intp(255)},
		},
		{
			ID:         "salary",
			Type:       model.Numeric,
			Label:      "Expected salary (k)",
			Validation: model.ValidationRules{MinValue: floatp(0), MaxValue: floatp(500)},
		},
		{
			ID:         "pitch",
			Type:       model.LongText,
			Label:      "Why this role?",
			Validation: model.ValidationRules{MaxLength: intp(20)},
		},
	}
}

func hasIssue(issues []FieldIssue, field string) bool {
	for _, i := range issues {
		if i.Field == field {
			return true
		}
	}
	return false
}

func TestValidate_CleanFormPasses(t *testing.T) {
	schema := CompileSchema(screeningQuestions())
	issues := schema.Validate(map[string]interface{}{
		"candidateName":  "Ada Lovelace",
		"candidateEmail": "ada@example.com",
		"authorized":     "yes",
		"salary":         float64(120),
		"pitch":          "I like compilers.",
	})
	if len(issues) != 0 {
		t.Fatalf("expected clean form, got %v", issues)
	}
}

func TestValidate_CandidateNameRequired(t *testing.T) {
	schema := CompileSchema(nil)
	issues := schema.Validate(map[string]interface{}{"candidateName": "   "})
	if !hasIssue(issues, "candidateName") {
		t.Fatalf("blank candidate name must be rejected, got %v", issues)
	}
}

func TestValidate_EmailShape(t *testing.T) {
	schema := CompileSchema(nil)

	issues := schema.Validate(map[string]interface{}{
		"candidateName":  "Ada",
		"candidateEmail": "not-an-email",
	})
	if !hasIssue(issues, "candidateEmail") {
		t.Fatalf("malformed email must be rejected, got %v", issues)
	}

	// Email is optional: absent or empty is fine.
	issues = schema.Validate(map[string]interface{}{"candidateName": "Ada"})
	if hasIssue(issues, "candidateEmail") {
		t.Fatalf("absent email must not be an issue, got %v", issues)
	}
}

func TestValidate_RequiredSuppressedWhenHidden(t *testing.T) {
	schema := CompileSchema(screeningQuestions())

	// visa_details is required but only visible when authorized == "no".
	issues := schema.Validate(map[string]interface{}{
		"candidateName": "Ada",
		"authorized":    "yes",
	})
	if hasIssue(issues, "visa_details") {
		t.Fatalf("hidden required question must not block submission, got %v", issues)
	}

	issues = schema.Validate(map[string]interface{}{
		"candidateName": "Ada",
		"authorized":    "no",
	})
	if !hasIssue(issues, "visa_details") {
		t.Fatalf("visible required question must be enforced, got %v", issues)
	}
}

func TestValidate_StaleHiddenValueIgnored(t *testing.T) {
	schema := CompileSchema(screeningQuestions())

	// The candidate typed visa details, then flipped the gate back to "yes".
	// The stale value must be reset rather than validated.
	issues := schema.Validate(map[string]interface{}{
		"candidateName": "Ada",
		"authorized":    "yes",
		"visa_details":  strings.Repeat("x", 300),
	})
	if hasIssue(issues, "visa_details") {
		t.Fatalf("stale value of a hidden question must not produce issues, got %v", issues)
	}
}

func TestValidate_NumericBoundaries(t *testing.T) {
	schema := CompileSchema(screeningQuestions())
	base := map[string]interface{}{"candidateName": "Ada", "authorized": "yes"}

	cases := []struct {
		value float64
		bad   bool
	}{
		{-1, true},
		{0, false},
		{500, false},
		{501, true},
	}
	for _, tc := range cases {
		vals := map[string]interface{}{"salary": tc.value}
		for k, v := range base {
			vals[k] = v
		}
		issues := schema.Validate(vals)
		if got := hasIssue(issues, "salary"); got != tc.bad {
			t.Fatalf("salary=%v: expected issue=%v, got %v", tc.value, tc.bad, issues)
		}
	}
}

func TestValidate_NumericMalformed(t *testing.T) {
	schema := CompileSchema(screeningQuestions())
	issues := schema.Validate(map[string]interface{}{
		"candidateName": "Ada",
		"authorized":    "yes",
		"salary":        "lots",
	})
	if !hasIssue(issues, "salary") {
		t.Fatalf("non-numeric answer must be rejected even for an optional question, got %v", issues)
	}
}

func TestValidate_BlankFormReportsEveryIssue(t *testing.T) {
	schema := CompileSchema(screeningQuestions())

	// No name and an unanswered required gate: both problems come back in
	// one pass.
	issues := schema.Validate(map[string]interface{}{})
	if !hasIssue(issues, "candidateName") {
		t.Fatalf("missing candidate name issue: %v", issues)
	}
	if !hasIssue(issues, "authorized") {
		t.Fatalf("missing required-question issue: %v", issues)
	}
}

func TestValidate_UnknownChoiceRejected(t *testing.T) {
	schema := CompileSchema(screeningQuestions())
	issues := schema.Validate(map[string]interface{}{
		"candidateName": "Ada",
		"authorized":    "maybe",
	})
	if !hasIssue(issues, "authorized") {
		t.Fatalf("answer outside the choice list must be rejected, got %v", issues)
	}
}

func TestValidate_MultiChoice(t *testing.T) {
	q := model.Question{
		ID:       "stack",
		Type:     model.MultiChoice,
		Required: true,
		Choices: []model.Choice{
			{ID: "c1", Label: "Go", Value: "go"},
			{ID: "c2", Label: "Rust", Value: "rust"},
		},
	}
	schema := CompileSchema([]model.Question{q})

	issues := schema.Validate(map[string]interface{}{
		"candidateName": "Ada",
		"stack":         []interface{}{},
	})
	if !hasIssue(issues, "stack") {
		t.Fatalf("empty required multi-choice must be rejected, got %v", issues)
	}

	issues = schema.Validate(map[string]interface{}{
		"candidateName": "Ada",
		"stack":         []interface{}{"go", "cobol"},
	})
	if !hasIssue(issues, "stack") {
		t.Fatalf("unknown value in multi-choice must be rejected, got %v", issues)
	}

	issues = schema.Validate(map[string]interface{}{
		"candidateName": "Ada",
		"stack":         []interface{}{"go", "rust"},
	})
	if hasIssue(issues, "stack") {
		t.Fatalf("valid multi-choice must pass, got %v", issues)
	}
}

func TestValidate_TextLength(t *testing.T) {
	schema := CompileSchema(screeningQuestions())
	issues := schema.Validate(map[string]interface{}{
		"candidateName": "Ada",
		"authorized":    "yes",
		"pitch":         "this pitch is definitely longer than twenty characters",
	})
	if !hasIssue(issues, "pitch") {
		t.Fatalf("over-length text must be rejected, got %v", issues)
	}
}

func TestValidate_FileRules(t *testing.T) {
	q := model.Question{
		ID:       "resume",
		Type:     model.FileUpload,
		Required: true,
		Validation: model.ValidationRules{
			AllowedFileTypes: []string{"application/pdf", "image/"},
			MaxFileSizeMB:    floatp(5),
		},
	}
	schema := CompileSchema([]model.Question{q})
	base := map[string]interface{}{"candidateName": "Ada"}

	issues := schema.Validate(base)
	if !hasIssue(issues, "resume") {
		t.Fatalf("missing required file must be rejected, got %v", issues)
	}

	file := func(name, mt string, size float64) map[string]interface{} {
		vals := map[string]interface{}{
			"candidateName": "Ada",
			"resume": map[string]interface{}{
				"fileName":  name,
				"mediaType": mt,
				"sizeMb":    size,
			},
		}
		return vals
	}

	if issues := schema.Validate(file("cv.docx", "application/msword", 1)); !hasIssue(issues, "resume") {
		t.Fatalf("disallowed media type must be rejected, got %v", issues)
	}
	if issues := schema.Validate(file("cv.pdf", "application/pdf", 9)); !hasIssue(issues, "resume") {
		t.Fatalf("oversized file must be rejected, got %v", issues)
	}
	if issues := schema.Validate(file("photo.png", "image/png", 1)); hasIssue(issues, "resume") {
		t.Fatalf("prefix-allowed media type must pass, got %v", issues)
	}
	if issues := schema.Validate(file("cv.pdf", "application/pdf", 4.5)); hasIssue(issues, "resume") {
		t.Fatalf("conforming file must pass, got %v", issues)
	}
}
