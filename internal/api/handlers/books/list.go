package books

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/shravya312/Online-book-Store/internal/api/httpx"
	storebooks "github.com/shravya312/Online-book-Store/internal/store/books"
	"github.com/shravya312/Online-book-Store/internal/store/listcache"
	"github.com/shravya312/Online-book-Store/internal/validate"
)

func handleList(db *sql.DB, rdb *redis.Client, w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	page, limit := validate.ClampPageLimit(r.URL.Query().Get("page"), r.URL.Query().Get("limit"), 10, 100)

	f := storebooks.ListFilters{
		Search:   search,
		Category: category,
		Page:     page,
		Limit:    limit,
	}

	cache := listcache.New(rdb)
	sig := filterSignature(f)
	if payload, ok := cache.Get(r.Context(), sig); ok {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
		return
	}

	items, total, err := storebooks.List(r.Context(), db, f)
	if err != nil {
		writeErr(w, err, "Error fetching books")
		return
	}

	env := httpx.Envelope{
		Success: true,
		Data:    items,
		Pagination: &httpx.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: storebooks.Pages(total, limit),
		},
	}
	payload, err := json.Marshal(env)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Error fetching books")
		return
	}
	cache.Set(r.Context(), sig, payload)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// filterSignature is the canonical cache key tail for a listing request.
// Same shape the client cache uses, so the two stay easy to reason about.
func filterSignature(f storebooks.ListFilters) string {
	return fmt.Sprintf("list?category=%s&limit=%d&page=%d&search=%s",
		url.QueryEscape(f.Category), f.Limit, f.Page, url.QueryEscape(f.Search))
}
