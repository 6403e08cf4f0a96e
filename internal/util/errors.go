package util

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrEmailRegistered   = errors.New("email is already registered")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrTransient         = errors.New("transient transport failure")
	ErrMalformedPayload  = errors.New("malformed request payload")
	ErrAssessmentMissing = errors.New("no assessment exists for this job")
)
