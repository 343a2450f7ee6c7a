package forms

import (
	"errors"
	"strings"
)

var (
	// ErrFormNotFound covers both a malformed identifier and an absent
	// document; callers cannot tell the two apart.
	ErrFormNotFound = errors.New("form not found")

	// ErrAlreadySubmitted rejects submit and delete on a submitted form.
	ErrAlreadySubmitted = errors.New("form is already submitted")
)

// ValidationError reports a rejected payload. For submit-time checks Fields
// lists every missing required field, not just the first one found.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return e.Message + ": " + strings.Join(e.Fields, ", ")
	}
	return e.Message
}

func newMissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{Message: "missing required fields", Fields: fields}
}
