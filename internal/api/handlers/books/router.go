package books

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"
)

const allowBooks = "GET, POST, PUT, DELETE, OPTIONS"

// Handler dispatches the /api/books collection and item routes. rdb may be
// nil; list caching and invalidation then become no-ops.
func Handler(db *sql.DB, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			idPart := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/books/"), "/")
			if idPart == "" {
				handleList(db, rdb, w, r)
				return
			}
			handleGet(db, w, r, idPart)

		case http.MethodPost:
			handleCreate(db, rdb, w, r)

		case http.MethodPut:
			handleUpdate(db, rdb, w, r)

		case http.MethodDelete:
			handleDelete(db, rdb, w, r)

		case http.MethodOptions:
			w.Header().Set("Allow", allowBooks)
			w.WriteHeader(http.StatusNoContent)

		default:
			w.Header().Set("Allow", allowBooks)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
