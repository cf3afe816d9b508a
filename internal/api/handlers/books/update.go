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

func handleUpdate(db *sql.DB, rdb *redis.Client, w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.Error(w, http.StatusBadRequest, "Missing book id")
		return
	}

	var patch storebooks.UpdateBookDTO
	if !decodeBody(w, r, &patch) {
		return
	}

	b, err := storebooks.Update(r.Context(), db, id, patch)
	if err != nil {
		writeErr(w, err, "Error updating book")
		return
	}

	if err := listcache.BumpVersion(r.Context(), rdb); err != nil {
		log.Printf("[books] cache bump failed: %v", err)
	}

	httpx.OKMessage(w, http.StatusOK, "Book updated successfully", b)
}
