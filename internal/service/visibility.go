package service

import "hirehub_backend/internal/model"

// IsVisible decides whether a question currently participates in validation
// and answer assembly. A question without conditional logic is always
// visible. Otherwise the referenced target answer is read from the current
// form state: a missing or nil target hides the question (fail closed), and
// so does a dangling reference to a question that no longer exists. The
// comparand matches by intersection when either side is a list.
//
// Evaluation is a pure function of the current answers; callers re-run it
// on every change.
func IsVisible(q model.Question, answers map[string]interface{}) bool {
	c := q.Conditional
	if c == nil {
		return true
	}
	raw, ok := answers[c.QuestionID]
	if !ok || raw == nil {
		return false
	}

	if c.Equals.Many != nil {
		if list, ok := asStringSlice(raw); ok {
			return intersects(list, c.Equals.Many)
		}
		if s, ok := asString(raw); ok {
			return containsString(c.Equals.Many, s)
		}
		return false
	}

	if list, ok := asStringSlice(raw); ok {
		return containsString(list, c.Equals.One)
	}
	if s, ok := asString(raw); ok {
		return s == c.Equals.One
	}
	return false
}

// ResetHiddenValues returns a copy of the form values in which every hidden
// question's value is reset to its type's empty default. Hiding one
// question can in turn hide its dependents, so the pass repeats until
// stable; the iteration cap keeps cyclic conditional configurations (an
// unsupported input) from looping forever.
func ResetHiddenValues(questions []model.Question, values map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(values))
	for k, v := range values {
		out[k] = v
	}

	for i := 0; i <= len(questions); i++ {
		changed := false
		for _, q := range questions {
			if IsVisible(q, out) {
				continue
			}
			if cur, ok := out[q.ID]; ok && !isEmptyDefault(q.Type, cur) {
				out[q.ID] = emptyDefault(q.Type)
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, e := range a {
		if containsString(b, e) {
			return true
		}
	}
	return false
}
