package apperr

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when no record has the requested identifier.
// Malformed identifiers behave the same as unknown ones.
var ErrNotFound = errors.New("not found")

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`    // e.g. "required", "min", "unique", "invalid"
	Message string `json:"message"` // human readable
}

// ValidationError carries the full list of offending fields so the client
// can render them next to the form inputs in one round trip.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validation builds a ValidationError for a single field.
func Validation(field, code, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Code: code, Message: message}}}
}

// IsValidation reports whether err is (or wraps) a ValidationError and
// returns it when so.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
