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

func handleDelete(db *sql.DB, rdb *redis.Client, w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.Error(w, http.StatusBadRequest, "Missing book id")
		return
	}

	b, err := storebooks.Delete(r.Context(), db, id)
	if err != nil {
		writeErr(w, err, "Error deleting book")
		return
	}

	if err := listcache.BumpVersion(r.Context(), rdb); err != nil {
		log.Printf("[books] cache bump failed: %v", err)
	}

	// Deletion is permanent; the envelope carries the record's last state.
	httpx.OKMessage(w, http.StatusOK, "Book deleted successfully", b)
}
