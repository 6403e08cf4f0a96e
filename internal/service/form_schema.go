package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"hirehub_backend/internal/model"
)

// FieldIssue is one field-path-tagged validation problem. Issues are data,
// not errors: the validator never panics or returns an error for bad input.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormSchema is the structural validator compiled from a flat question
// list. It checks the candidate identity fields plus one type-dispatched
// rule set per question, with required-ness suppressed for questions that
// are currently hidden.
type FormSchema struct {
	questions []model.Question
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func CompileSchema(questions []model.Question) *FormSchema {
	return &FormSchema{questions: questions}
}

// Validate checks a record of {candidateName, candidateEmail?, [questionId]:
// value} and returns all issues found, or nil when the form is acceptable.
// Stale values of hidden questions are reset to their empty defaults before
// any rule runs, so an invisible required question can never block
// submission.
func (s *FormSchema) Validate(values map[string]interface{}) []FieldIssue {
	vals := ResetHiddenValues(s.questions, values)

	var issues []FieldIssue

	name, _ := asString(vals["candidateName"])
	if strings.TrimSpace(name) == "" {
		issues = append(issues, FieldIssue{Field: "candidateName", Message: "Candidate name is required"})
	}

	if email, ok := asString(vals["candidateEmail"]); ok && strings.TrimSpace(email) != "" {
		if !emailPattern.MatchString(strings.TrimSpace(email)) {
			issues = append(issues, FieldIssue{Field: "candidateEmail", Message: "Invalid email address"})
		}
	}

	for _, q := range s.questions {
		visible := IsVisible(q, vals)
		issues = append(issues, validateQuestion(q, vals[q.ID], visible)...)
	}

	return issues
}

func validateQuestion(q model.Question, value interface{}, visible bool) []FieldIssue {
	var issues []FieldIssue
	require := func(msg string) {
		issues = append(issues, FieldIssue{Field: q.ID, Message: msg})
	}

	switch q.Type {
	case model.SingleChoice:
		str := ""
		if value != nil {
			s, ok := asString(value)
			if !ok {
				require("Answer must be a string")
				return issues
			}
			str = s
		}
		if visible && q.Required && str == "" {
			require("This question is required")
		}
		if str != "" && !choiceValues(q)[str] {
			require(fmt.Sprintf("Unknown choice %q", str))
		}

	case model.MultiChoice:
		var list []string
		if value != nil {
			l, ok := asStringSlice(value)
			if !ok {
				require("Answer must be a list of choices")
				return issues
			}
			list = l
		}
		if visible && q.Required && len(list) == 0 {
			require("Select at least one option")
		}
		allowed := choiceValues(q)
		for _, v := range list {
			if !allowed[v] {
				require(fmt.Sprintf("Unknown choice %q", v))
			}
		}

	case model.ShortText, model.LongText:
		str := ""
		if value != nil {
			s, ok := asString(value)
			if !ok {
				require("Answer must be text")
				return issues
			}
			str = s
		}
		trimmed := strings.TrimSpace(str)
		if visible && q.Required && trimmed == "" {
			require("This question is required")
		}
		if q.Validation.MinLength != nil && trimmed != "" && utf8.RuneCountInString(trimmed) < *q.Validation.MinLength {
			require(fmt.Sprintf("Answer must be at least %d characters", *q.Validation.MinLength))
		}
		if q.Validation.MaxLength != nil && utf8.RuneCountInString(trimmed) > *q.Validation.MaxLength {
			require(fmt.Sprintf("Answer must be at most %d characters", *q.Validation.MaxLength))
		}

	case model.Numeric:
		num, state := parseNumeric(value)
		switch state {
		case numericInvalid:
			require("Answer must be a number")
		case numericBlank:
			if visible && q.Required {
				require("This question is required")
			}
		case numericValid:
			if q.Validation.MinValue != nil && num < *q.Validation.MinValue {
				require(fmt.Sprintf("Value must be at least %v", *q.Validation.MinValue))
			}
			if q.Validation.MaxValue != nil && num > *q.Validation.MaxValue {
				require(fmt.Sprintf("Value must be at most %v", *q.Validation.MaxValue))
			}
		}

	case model.FileUpload:
		if value == nil {
			if visible && q.Required {
				require("A file is required")
			}
			return issues
		}
		file, ok := asFileValue(value)
		if !ok {
			require("Answer must be a file reference")
			return issues
		}
		if len(q.Validation.AllowedFileTypes) > 0 && !mediaTypeAllowed(file.MediaType, q.Validation.AllowedFileTypes) {
			require(fmt.Sprintf("File type %q is not allowed", file.MediaType))
		}
		if q.Validation.MaxFileSizeMB != nil && file.SizeMB > *q.Validation.MaxFileSizeMB {
			require(fmt.Sprintf("File must be at most %v MB", *q.Validation.MaxFileSizeMB))
		}
	}

	return issues
}

// mediaTypeAllowed accepts exact matches plus prefix entries like "image/".
func mediaTypeAllowed(mediaType string, allowed []string) bool {
	for _, a := range allowed {
		if mediaType == a {
			return true
		}
		if strings.HasSuffix(a, "/") && strings.HasPrefix(mediaType, a) {
			return true
		}
	}
	return false
}
