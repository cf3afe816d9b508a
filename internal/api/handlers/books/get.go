package books

import (
	"database/sql"
	"net/http"

	"github.com/shravya312/Online-book-Store/internal/api/httpx"
	"github.com/shravya312/Online-book-Store/internal/metrics/viewqueue"
	storebooks "github.com/shravya312/Online-book-Store/internal/store/books"
)

func handleGet(db *sql.DB, w http.ResponseWriter, r *http.Request, id string) {
	b, err := storebooks.FetchByID(r.Context(), db, id)
	if err != nil {
		writeErr(w, err, "Error fetching book")
		return
	}
	viewqueue.Enqueue(b.ID)
	httpx.OK(w, b)
}
