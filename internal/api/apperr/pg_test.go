package apperr_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgconn"

	"github.com/shravya312/Online-book-Store/internal/api/apperr"
)

func TestNormalize_UniqueViolation(t *testing.T) {
	err := apperr.Normalize(&pgconn.PgError{Code: "23505", ConstraintName: "books_isbn_key"})
	ve, ok := apperr.IsValidation(err)
	if !ok {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "isbn" || ve.Fields[0].Code != "unique" {
		t.Fatalf("unexpected fields: %+v", ve.Fields)
	}
}

func TestNormalize_NotNullUsesColumnName(t *testing.T) {
	// 23502 reports the column, not a named constraint; the column name is
	// the field.
	err := apperr.Normalize(&pgconn.PgError{Code: "23502", ColumnName: "category"})
	ve, ok := apperr.IsValidation(err)
	if !ok {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if ve.Fields[0].Field != "category" || ve.Fields[0].Code != "required" {
		t.Fatalf("unexpected fields: %+v", ve.Fields)
	}
}

func TestNormalize_CheckViolation(t *testing.T) {
	err := apperr.Normalize(&pgconn.PgError{Code: "23514", ConstraintName: "books_price_check"})
	ve, ok := apperr.IsValidation(err)
	if !ok {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if ve.Fields[0].Field != "price" || ve.Fields[0].Code != "min" {
		t.Fatalf("unexpected fields: %+v", ve.Fields)
	}
}

func TestNormalize_BadUUIDIsNotFound(t *testing.T) {
	err := apperr.Normalize(&pgconn.PgError{Code: "22P02"})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestNormalize_PassesThroughUnknownErrors(t *testing.T) {
	orig := errors.New("connection reset")
	if got := apperr.Normalize(orig); got != orig {
		t.Fatalf("unknown errors must pass through unchanged, got %v", got)
	}
	if apperr.Normalize(nil) != nil {
		t.Fatal("nil must stay nil")
	}
}
