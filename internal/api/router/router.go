package router

import (
	"database/sql"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/shravya312/Online-book-Store/internal/api/handlers"
	"github.com/shravya312/Online-book-Store/internal/api/handlers/books"
)

func Router(db *sql.DB, rdb *redis.Client) http.Handler {
	mux := http.NewServeMux()

	// Root / health
	mux.HandleFunc("GET /", handlers.RootHandler)

	// Keep bare /api/books -> /api/books/
	mux.HandleFunc("GET /api/books", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/books/"+queryTail(r), http.StatusMovedPermanently)
	})

	// Books (method-specific + 1.22 patterns)
	mux.Handle("GET /api/books/", books.Handler(db, rdb))         // list
	mux.Handle("POST /api/books/", books.Handler(db, rdb))        // create
	mux.Handle("GET /api/books/{id}", books.Handler(db, rdb))     // get
	mux.Handle("PUT /api/books/{id}", books.Handler(db, rdb))     // update
	mux.Handle("DELETE /api/books/{id}", books.Handler(db, rdb))  // delete
	mux.Handle("OPTIONS /api/books/", books.Handler(db, rdb))     // preflight
	mux.Handle("OPTIONS /api/books/{id}", books.Handler(db, rdb)) // preflight

	// Cover image upload + presign-on-read
	mux.Handle("POST /api/books/{id}/cover", books.UploadCoverHandler(db, rdb))
	mux.Handle("GET /api/books/{id}/cover", books.GetCoverHandler(db))

	return mux
}

func queryTail(r *http.Request) string {
	if r.URL.RawQuery == "" {
		return ""
	}
	return "?" + r.URL.RawQuery
}
