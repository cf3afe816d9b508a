package books

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/shravya312/Online-book-Store/internal/api/httpx"
	storebooks "github.com/shravya312/Online-book-Store/internal/store/books"
	"github.com/shravya312/Online-book-Store/internal/store/listcache"
)

func handleCreate(db *sql.DB, rdb *redis.Client, w http.ResponseWriter, r *http.Request) {
	var dto storebooks.CreateBookDTO
	if !decodeBody(w, r, &dto) {
		return
	}

	b, err := storebooks.Create(r.Context(), db, dto)
	if err != nil {
		writeErr(w, err, "Error creating book")
		return
	}

	// Best-effort: abandon every cached list page.
	if err := listcache.BumpVersion(r.Context(), rdb); err != nil {
		log.Printf("[books] cache bump failed: %v", err)
	}

	httpx.OKMessage(w, http.StatusCreated, "Book created successfully", b)
}
