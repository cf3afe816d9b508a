package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shravya312/Online-book-Store/internal/client"
)

// fakeAPI counts hits per route so tests can assert cache behavior.
type fakeAPI struct {
	listHits   atomic.Int64
	detailHits atomic.Int64
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/books/", func(w http.ResponseWriter, r *http.Request) {
		f.listHits.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": []map[string]any{
				{"id": "b1", "title": "Dune", "author": "Frank Herbert", "isbn": "111-1"},
			},
			"pagination": map[string]int{"page": 1, "limit": 10, "total": 1, "pages": 1},
		})
	})
	mux.HandleFunc("GET /api/books/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.detailHits.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"id": r.PathValue("id"), "title": "Dune"},
		})
	})
	mux.HandleFunc("POST /api/books/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"message": "Book created successfully",
			"data":    map[string]any{"id": "b2", "title": "Hyperion"},
		})
	})
	mux.HandleFunc("PUT /api/books/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Book updated successfully",
			"data":    map[string]any{"id": r.PathValue("id"), "title": "Dune (Deluxe)"},
		})
	})
	mux.HandleFunc("DELETE /api/books/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Book deleted successfully",
			"data":    map[string]any{"id": r.PathValue("id"), "title": "Dune"},
		})
	})
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T) (*client.Client, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return client.New(srv.URL + "/api"), api
}

func TestGetBooks_CachesRepeats(t *testing.T) {
	c, api := newTestClient(t)
	ctx := t.Context()

	q := client.ListQuery{Page: 1, Limit: 10}
	first := c.GetBooks(ctx, q)
	if !first.Success || len(first.Data) != 1 {
		t.Fatalf("unexpected response: %+v", first)
	}

	second := c.GetBooks(ctx, q)
	if !second.Success {
		t.Fatalf("unexpected response: %+v", second)
	}
	if hits := api.listHits.Load(); hits != 1 {
		t.Fatalf("repeat query should hit cache; server saw %d requests", hits)
	}

	// A different query is a different cache entry.
	c.GetBooks(ctx, client.ListQuery{Search: "dune"})
	if hits := api.listHits.Load(); hits != 2 {
		t.Fatalf("new query should reach the server; saw %d requests", hits)
	}
}

func TestCreateBook_InvalidatesLists(t *testing.T) {
	c, api := newTestClient(t)
	ctx := t.Context()

	q := client.ListQuery{Page: 1, Limit: 10}
	c.GetBooks(ctx, q)
	c.GetBooks(ctx, q)
	if hits := api.listHits.Load(); hits != 1 {
		t.Fatalf("expected 1 list request before mutation, saw %d", hits)
	}

	resp := c.CreateBook(ctx, map[string]any{"title": "Hyperion"})
	if !resp.Success {
		t.Fatalf("unexpected response: %+v", resp)
	}

	c.GetBooks(ctx, q)
	if hits := api.listHits.Load(); hits != 2 {
		t.Fatalf("list cache should be stale after create; saw %d requests", hits)
	}
}

func TestUpdateBook_InvalidatesDetail(t *testing.T) {
	c, api := newTestClient(t)
	ctx := t.Context()

	c.GetBook(ctx, "b1")
	c.GetBook(ctx, "b1")
	if hits := api.detailHits.Load(); hits != 1 {
		t.Fatalf("expected 1 detail request before mutation, saw %d", hits)
	}

	resp := c.UpdateBook(ctx, "b1", map[string]any{"title": "Dune (Deluxe)"})
	if !resp.Success {
		t.Fatalf("unexpected response: %+v", resp)
	}

	c.GetBook(ctx, "b1")
	if hits := api.detailHits.Load(); hits != 2 {
		t.Fatalf("detail cache should be stale after update; saw %d requests", hits)
	}
}

func TestDeleteBook_InvalidatesDetailAndLists(t *testing.T) {
	c, api := newTestClient(t)
	ctx := t.Context()

	c.GetBooks(ctx, client.ListQuery{})
	c.GetBook(ctx, "b1")

	resp := c.DeleteBook(ctx, "b1")
	if !resp.Success || resp.Data == nil || resp.Data.ID != "b1" {
		t.Fatalf("delete should return the record's last state: %+v", resp)
	}

	c.GetBooks(ctx, client.ListQuery{})
	c.GetBook(ctx, "b1")
	if api.listHits.Load() != 2 || api.detailHits.Load() != 2 {
		t.Fatalf("both caches should be stale after delete; list=%d detail=%d",
			api.listHits.Load(), api.detailHits.Load())
	}
}

func TestConnectionFailure_SyntheticEnvelope(t *testing.T) {
	// Point at a server that is already gone.
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := client.New(base + "/api")
	resp := c.GetBooks(t.Context(), client.ListQuery{})
	if resp.Success {
		t.Fatal("expected failure envelope")
	}
	if resp.Message != "Failed to connect to server. Make sure the backend is running." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Fatalf("failure envelope should carry an empty list, got %v", resp.Data)
	}

	single := c.GetBook(t.Context(), "b1")
	if single.Success || single.Message == "" {
		t.Fatalf("unexpected response: %+v", single)
	}
}

func TestServerErrorEnvelopePassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "Book not found",
		})
	}))
	t.Cleanup(srv.Close)

	c := client.New(srv.URL + "/api")
	resp := c.GetBook(t.Context(), "123e4567-e89b-12d3-a456-426614174000")
	if resp.Success || resp.Message != "Book not found" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
