package validate

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shravya312/Online-book-Store/internal/api/apperr"
)

const maxTextLen = 500

// Fields accumulates per-field errors so a bad payload reports everything
// wrong in a single response instead of failing one field at a time.
type Fields struct {
	errs []apperr.FieldError
}

func (f *Fields) Add(field, code, message string) {
	f.errs = append(f.errs, apperr.FieldError{Field: field, Code: code, Message: message})
}

// Err returns nil when no field failed.
func (f *Fields) Err() error {
	if len(f.errs) == 0 {
		return nil
	}
	return &apperr.ValidationError{Fields: f.errs}
}

// Required trims and records an error when the result is empty or too long.
func (f *Fields) Required(field, s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		f.Add(field, "required", field+" is required")
		return s
	}
	if utf8.RuneCountInString(s) > maxTextLen {
		f.Add(field, "too_long", field+" must be at most "+strconv.Itoa(maxTextLen)+" characters")
	}
	return s
}

// Optional trims without requiring a value.
func (f *Fields) Optional(field, s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxTextLen {
		f.Add(field, "too_long", field+" must be at most "+strconv.Itoa(maxTextLen)+" characters")
	}
	return s
}

// NonNegativeFloat checks price-like values.
func (f *Fields) NonNegativeFloat(field string, v float64) {
	if v < 0 {
		f.Add(field, "min", field+" must not be negative")
	}
}

// NonNegativeInt checks stock-like values.
func (f *Fields) NonNegativeInt(field string, v int) {
	if v < 0 {
		f.Add(field, "min", field+" must not be negative")
	}
}

// Date parses an optional YYYY-MM-DD value. Empty input yields nil.
func (f *Fields) Date(field, s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		f.Add(field, "invalid", field+" must be a YYYY-MM-DD date")
		return nil
	}
	return &t
}

// ClampPageLimit parses and clamps paging. Non-positive or unparsable
// values fall back to the defaults; limit is capped at max.
func ClampPageLimit(pageRaw, limitRaw string, defLimit, max int) (int, int) {
	page := 1
	if v, err := strconv.Atoi(strings.TrimSpace(pageRaw)); err == nil && v >= 1 {
		page = v
	}
	limit := defLimit
	if v, err := strconv.Atoi(strings.TrimSpace(limitRaw)); err == nil && v >= 1 {
		if v > max {
			v = max
		}
		limit = v
	}
	return page, limit
}
