package service

import (
	"math"
	"strconv"
	"strings"

	"hirehub_backend/internal/model"
)

// Raw form values arrive as generic JSON: strings, string arrays, numbers,
// nulls and file-reference objects, keyed by question id (plus the
// candidateName/candidateEmail fields). The helpers here coerce those
// loosely-typed values into the shapes the validator and assembler work on.

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asStringSlice(v interface{}) ([]string, bool) {
	switch vv := v.(type) {
	case []string:
		return vv, true
	case []interface{}:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

type numericState int

const (
	numericBlank numericState = iota
	numericValid
	numericInvalid
)

// parseNumeric classifies a raw numeric answer. Blank means absent: nil or
// an empty/whitespace string. A malformed non-blank string is invalid, not
// blank, so it always fails validation regardless of required-ness.
func parseNumeric(v interface{}) (float64, numericState) {
	switch vv := v.(type) {
	case nil:
		return 0, numericBlank
	case float64:
		if math.IsNaN(vv) || math.IsInf(vv, 0) {
			return 0, numericInvalid
		}
		return vv, numericValid
	case int:
		return float64(vv), numericValid
	case string:
		trimmed := strings.TrimSpace(vv)
		if trimmed == "" {
			return 0, numericBlank
		}
		n, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, numericInvalid
		}
		return n, numericValid
	default:
		return 0, numericInvalid
	}
}

// asFileValue decodes a file_upload answer, which is either an already
// typed FileValue or the generic JSON object form.
func asFileValue(v interface{}) (model.FileValue, bool) {
	switch vv := v.(type) {
	case model.FileValue:
		return vv, true
	case *model.FileValue:
		if vv == nil {
			return model.FileValue{}, false
		}
		return *vv, true
	case map[string]interface{}:
		var f model.FileValue
		if name, ok := vv["fileName"].(string); ok {
			f.FileName = name
		}
		if mt, ok := vv["mediaType"].(string); ok {
			f.MediaType = mt
		}
		if size, ok := vv["sizeMb"].(float64); ok {
			f.SizeMB = size
		}
		if f.FileName == "" {
			return model.FileValue{}, false
		}
		return f, true
	default:
		return model.FileValue{}, false
	}
}

// emptyDefault is the per-type reset value applied to hidden questions:
// '' for text/choice, empty list for multi_choice, nil for numeric/file.
func emptyDefault(t model.QuestionType) interface{} {
	switch t {
	case model.MultiChoice:
		return []string{}
	case model.Numeric, model.FileUpload:
		return nil
	default:
		return ""
	}
}

func isEmptyDefault(t model.QuestionType, v interface{}) bool {
	switch t {
	case model.MultiChoice:
		if v == nil {
			return false
		}
		list, ok := asStringSlice(v)
		return ok && len(list) == 0
	case model.Numeric, model.FileUpload:
		return v == nil
	default:
		s, ok := asString(v)
		return ok && s == ""
	}
}

func choiceValues(q model.Question) map[string]bool {
	set := make(map[string]bool, len(q.Choices))
	for _, c := range q.Choices {
		set[c.Value] = true
	}
	return set
}
