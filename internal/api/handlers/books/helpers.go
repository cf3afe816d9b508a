package books

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shravya312/Online-book-Store/internal/api/apperr"
	"github.com/shravya312/Online-book-Store/internal/api/httpx"
)

// writeErr maps the store taxonomy onto HTTP statuses:
// ValidationError → 400, ErrNotFound → 404, anything else → 500.
func writeErr(w http.ResponseWriter, err error, fallback string) {
	if ve, ok := apperr.IsValidation(err); ok {
		httpx.ErrorDetail(w, http.StatusBadRequest, fallback, ve.Fields)
		return
	}
	if errors.Is(err, apperr.ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, "Book not found")
		return
	}
	httpx.Error(w, http.StatusInternalServerError, fallback)
}

// decodeBody decodes a JSON body strictly. Unknown fields are rejected so
// typos in payloads fail loudly instead of silently dropping a field.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
