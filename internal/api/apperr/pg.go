package apperr

import (
	"errors"

	"github.com/jackc/pgconn"
)

// Map well-known constraint names to fields (extend as you add constraints)
var constraintField = map[string]string{
	"books_isbn_key":    "isbn",
	"books_price_check": "price",
	"books_stock_check": "stock",
	"books_pkey":        "id",
}

func fieldFromConstraint(c string) string {
	if f, ok := constraintField[c]; ok {
		return f
	}
	return ""
}

// FromPG translates a pgconn.PgError into the app taxonomy. Returns
// (err, true) when the SQLSTATE maps to something the caller should treat
// as client error; (nil, false) means "keep the original store error".
func FromPG(err error) (error, bool) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return nil, false
	}

	field := fieldFromConstraint(pg.ConstraintName)

	switch pg.Code {
	case "23505": // unique_violation — the isbn unique index in practice
		if field == "" {
			field = "isbn"
		}
		return Validation(field, "unique", field+" already exists"), true
	case "23502": // not_null_violation
		if field == "" {
			field = pg.ColumnName
		}
		if field == "" {
			field = "field"
		}
		return Validation(field, "required", field+" is required"), true
	case "23514": // check_violation — price/stock >= 0
		if field == "" {
			field = "field"
		}
		return Validation(field, "min", field+" must not be negative"), true
	case "22P02": // invalid_text_representation — malformed uuid in WHERE id=$1
		return ErrNotFound, true
	}
	return nil, false
}

// Normalize rewrites known driver errors into the app taxonomy and leaves
// everything else untouched (surfaces as a 500 at the HTTP layer).
func Normalize(err error) error {
	if err == nil {
		return nil
	}
	if mapped, ok := FromPG(err); ok {
		return mapped
	}
	return err
}
