package validate_test

import (
	"strings"
	"testing"

	"github.com/shravya312/Online-book-Store/internal/api/apperr"
	"github.com/shravya312/Online-book-Store/internal/validate"
)

func TestFields_CollectsAllErrors(t *testing.T) {
	var f validate.Fields
	f.Required("title", "  ")
	f.Required("author", "")
	f.NonNegativeFloat("price", -1)

	err := f.Err()
	ve, ok := apperr.IsValidation(err)
	if !ok {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(ve.Fields) != 3 {
		t.Fatalf("want 3 field errors, got %+v", ve.Fields)
	}
}

func TestFields_NoErrors(t *testing.T) {
	var f validate.Fields
	if got := f.Required("title", "  Dune  "); got != "Dune" {
		t.Fatalf("Required should trim; got %q", got)
	}
	f.NonNegativeFloat("price", 0)
	f.NonNegativeInt("stock", 0)
	if err := f.Err(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestFields_TooLong(t *testing.T) {
	var f validate.Fields
	f.Required("title", strings.Repeat("a", 501))
	ve, ok := apperr.IsValidation(f.Err())
	if !ok || len(ve.Fields) != 1 || ve.Fields[0].Code != "too_long" {
		t.Fatalf("want too_long error, got %v", f.Err())
	}
}

func TestFields_Date(t *testing.T) {
	var f validate.Fields

	if got := f.Date("publishedDate", ""); got != nil {
		t.Fatalf("empty date should yield nil, got %v", got)
	}
	d := f.Date("publishedDate", "1965-08-01")
	if d == nil || d.Year() != 1965 || int(d.Month()) != 8 {
		t.Fatalf("unexpected date: %v", d)
	}
	if err := f.Err(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	f.Date("publishedDate", "08/01/1965")
	ve, ok := apperr.IsValidation(f.Err())
	if !ok || ve.Fields[0].Code != "invalid" {
		t.Fatalf("want invalid date error, got %v", f.Err())
	}
}

func TestClampPageLimit(t *testing.T) {
	cases := []struct {
		page, limit         string
		wantPage, wantLimit int
	}{
		{"", "", 1, 10},
		{"3", "25", 3, 25},
		{"0", "0", 1, 10},
		{"-5", "-5", 1, 10},
		{"abc", "xyz", 1, 10},
		{"2", "5000", 2, 100},
		{" 2 ", " 20 ", 2, 20},
	}
	for _, c := range cases {
		page, limit := validate.ClampPageLimit(c.page, c.limit, 10, 100)
		if page != c.wantPage || limit != c.wantLimit {
			t.Errorf("ClampPageLimit(%q, %q) = (%d, %d), want (%d, %d)",
				c.page, c.limit, page, limit, c.wantPage, c.wantLimit)
		}
	}
}
