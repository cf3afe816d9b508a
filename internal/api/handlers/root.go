package handlers

import (
	"net/http"

	"github.com/shravya312/Online-book-Store/internal/api/httpx"
)

// RootHandler is the health/landing endpoint.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		httpx.Error(w, http.StatusNotFound, "Route not found")
		return
	}
	httpx.OK(w, map[string]string{
		"name":   "online-book-store-api",
		"status": "healthy",
	})
}
