package client_test

import (
	"testing"

	"github.com/shravya312/Online-book-Store/internal/client"
)

func TestCache_PrefixInvalidation(t *testing.T) {
	c := client.NewCache()
	c.Set("books:list?page=1", "a")
	c.Set("books:list?page=2", "b")
	c.Set("books:detail:b1", "c")

	c.InvalidatePrefix("books:list")

	if _, ok := c.Get("books:list?page=1"); ok {
		t.Fatal("list entries should be gone")
	}
	if _, ok := c.Get("books:detail:b1"); !ok {
		t.Fatal("detail entry should survive a list invalidation")
	}
	if c.Len() != 1 {
		t.Fatalf("want 1 entry left, got %d", c.Len())
	}
}

func TestCache_Invalidate(t *testing.T) {
	c := client.NewCache()
	c.Set("k", 1)
	if v, ok := c.Get("k"); !ok || v != 1 {
		t.Fatalf("unexpected value: %v %v", v, ok)
	}
	c.Invalidate("k")
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry should be gone")
	}
}
