// Package client is the typed data layer over the books API: request
// helpers plus a keyed response cache with mutation-driven invalidation.
// Transport failures never surface as errors; callers always get an
// envelope, failed or not.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shravya312/Online-book-Store/internal/models"
)

const connectFailedMsg = "Failed to connect to server. Make sure the backend is running."

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// BooksResponse is the envelope for list requests.
type BooksResponse struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Data       []models.Book   `json:"data,omitempty"`
	Error      json.RawMessage `json:"error,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// BookResponse is the envelope for single-record requests.
type BookResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    *models.Book    `json:"data,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

// ListQuery mirrors the listing endpoint's query parameters. Zero values
// are omitted from the request so the server applies its own defaults.
type ListQuery struct {
	Search   string
	Category string
	Page     int
	Limit    int
}

type Client struct {
	baseURL string
	httpc   *http.Client
	cache   *Cache
}

// New builds a client for baseURL (e.g. "http://localhost:5000/api").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		cache:   NewCache(),
	}
}

// GetBooks lists books, serving repeats of the same query from cache until
// a mutation invalidates it.
func (c *Client) GetBooks(ctx context.Context, q ListQuery) BooksResponse {
	key := listKey(q)
	if cached, ok := c.cache.Get(key); ok {
		return cached.(BooksResponse)
	}

	var resp BooksResponse
	if !c.do(ctx, http.MethodGet, "/books/"+q.encode(), nil, &resp) {
		return BooksResponse{Success: false, Data: []models.Book{}, Message: connectFailedMsg}
	}
	if resp.Success {
		c.cache.Set(key, resp)
	}
	return resp
}

// GetBook fetches one record by id, cached until invalidated.
func (c *Client) GetBook(ctx context.Context, id string) BookResponse {
	key := detailKey(id)
	if cached, ok := c.cache.Get(key); ok {
		return cached.(BookResponse)
	}

	var resp BookResponse
	if !c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(id), nil, &resp) {
		return BookResponse{Success: false, Message: connectFailedMsg}
	}
	if resp.Success {
		c.cache.Set(key, resp)
	}
	return resp
}

// CreateBook creates a record; on success every cached list is stale.
func (c *Client) CreateBook(ctx context.Context, book any) BookResponse {
	var resp BookResponse
	if !c.do(ctx, http.MethodPost, "/books/", book, &resp) {
		return BookResponse{Success: false, Message: connectFailedMsg}
	}
	if resp.Success {
		c.cache.InvalidatePrefix(listPrefix)
	}
	return resp
}

// UpdateBook partially updates a record; invalidates the lists and the
// record's own cache entry.
func (c *Client) UpdateBook(ctx context.Context, id string, patch any) BookResponse {
	var resp BookResponse
	if !c.do(ctx, http.MethodPut, "/books/"+url.PathEscape(id), patch, &resp) {
		return BookResponse{Success: false, Message: connectFailedMsg}
	}
	if resp.Success {
		c.cache.InvalidatePrefix(listPrefix)
		c.cache.Invalidate(detailKey(id))
	}
	return resp
}

// DeleteBook removes a record permanently; the envelope carries its last
// known state.
func (c *Client) DeleteBook(ctx context.Context, id string) BookResponse {
	var resp BookResponse
	if !c.do(ctx, http.MethodDelete, "/books/"+url.PathEscape(id), nil, &resp) {
		return BookResponse{Success: false, Message: connectFailedMsg}
	}
	if resp.Success {
		c.cache.InvalidatePrefix(listPrefix)
		c.cache.Invalidate(detailKey(id))
	}
	return resp
}

// do runs one request and decodes the envelope into out. Returns false
// only on transport/decoding failure; HTTP error statuses still decode
// fine because the server wraps those in the same envelope shape.
func (c *Client) do(ctx context.Context, method, path string, body, out any) bool {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return false
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return false
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out) == nil
}

func (q ListQuery) encode() string {
	params := url.Values{}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Page > 0 {
		params.Set("page", fmt.Sprint(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", fmt.Sprint(q.Limit))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

const listPrefix = "books:list"

func listKey(q ListQuery) string {
	return fmt.Sprintf("%s?category=%s&limit=%d&page=%d&search=%s",
		listPrefix, url.QueryEscape(q.Category), q.Limit, q.Page, url.QueryEscape(q.Search))
}

func detailKey(id string) string { return "books:detail:" + id }
