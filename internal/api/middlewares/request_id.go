package middlewares

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"regexp"
	"time"
)

type ctxKey int

const ctxKeyRequestID ctxKey = iota

// Inbound ids are accepted only when they look sane; anything else gets
// replaced so log lines can't carry arbitrary client strings.
var validRID = regexp.MustCompile(`^[A-Za-z0-9_.\-]{1,64}$`)

// RequestID tags every request with an id, honoring a well-formed
// X-Request-ID from the caller and minting one otherwise. The id rides the
// request context and both request/response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if !validRID.MatchString(rid) {
			rid = newRequestID()
		}
		r = r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, rid))
		r.Header.Set("X-Request-ID", rid)
		w.Header().Set("X-Request-ID", rid)

		next.ServeHTTP(w, r)
	})
}

// GetRequestID returns the id RequestID attached, falling back to the
// header when the middleware did not run.
func GetRequestID(r *http.Request) string {
	v, _ := r.Context().Value(ctxKeyRequestID).(string)
	if v != "" {
		return v
	}
	return r.Header.Get("X-Request-ID")
}

func newRequestID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	// timestamp prefix keeps log greps roughly chronological
	return time.Now().UTC().Format("20060102T150405Z") + "-" + hex.EncodeToString(b[:])
}
