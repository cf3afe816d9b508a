package listcache

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Request-scoped cache guard: no PINGs, warn once per request, no retry storms.
type Cache struct {
	rdb     *redis.Client
	enabled bool
	warned  bool
	prefix  string
	ttl     time.Duration
	shortTO time.Duration // short timeout per cache op
}

const versionKey = "books:ver" // global version counter in Redis

// New builds a request-scoped wrapper around the list cache. Entries live
// under "books:v{N}:" where N comes from books:ver; bumping the version
// abandons every cached list at once. Redis read failures fail-open to v1.
func New(rdb *redis.Client) *Cache {
	if rdb == nil || os.Getenv("BOOKS_DISABLE_CACHE") == "1" {
		return &Cache{enabled: false}
	}

	ttl := 5 * time.Minute
	if v := os.Getenv("BOOKS_CACHE_TTL"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	shortTO := 150 * time.Millisecond
	if v := os.Getenv("BOOKS_CACHE_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			shortTO = time.Duration(ms) * time.Millisecond
		}
	}

	prefix := "books:v1:"
	{
		ctx, cancel := context.WithTimeout(context.Background(), shortTO)
		defer cancel()
		ver, err := rdb.Get(ctx, versionKey).Int64()
		if err == redis.Nil || err != nil {
			ver = 1
		}
		prefix = fmt.Sprintf("books:v%d:", ver)
	}

	return &Cache{rdb: rdb, enabled: true, prefix: prefix, ttl: ttl, shortTO: shortTO}
}

// Key derives the cache key for a filter signature such as
// "list?category=Fiction&limit=10&page=1&search=dune".
func (c *Cache) Key(sig string) string { return c.prefix + sig }

// Get returns the cached payload for sig, or (nil, false) on miss/bypass.
func (c *Cache) Get(ctx context.Context, sig string) ([]byte, bool) {
	if !c.enabled {
		return nil, false
	}
	var cancel context.CancelFunc
	ctx, cancel = context.WithTimeout(ctx, c.shortTO)
	defer cancel()

	b, err := c.rdb.Get(ctx, c.Key(sig)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.warnOnce("cache get failed: %v; bypassing cache for this request", err)
		return nil, false
	}
	return b, true
}

// Set stores the payload under sig with the cache TTL. Best-effort.
func (c *Cache) Set(ctx context.Context, sig string, payload []byte) {
	if !c.enabled {
		return
	}
	var cancel context.CancelFunc
	ctx, cancel = context.WithTimeout(ctx, c.shortTO)
	defer cancel()

	if err := c.rdb.SetEx(ctx, c.Key(sig), payload, c.ttl).Err(); err != nil {
		c.warnOnce("cache set failed: %v (muted next)", err)
	}
}

func (c *Cache) warnOnce(format string, args ...any) {
	if c.warned {
		return
	}
	c.warned = true
	log.Printf("[books][cache] "+format, args...)
}

// BumpVersion increments the global version key (books:ver).
// Call this AFTER a successful create/update/delete. Safe no-op when rdb
// is nil; short timeout; error is for logging only.
func BumpVersion(ctx context.Context, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	shortTO := 150 * time.Millisecond
	if v := os.Getenv("BOOKS_CACHE_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			shortTO = time.Duration(ms) * time.Millisecond
		}
	}
	cctx, cancel := context.WithTimeout(ctx, shortTO)
	defer cancel()
	if _, err := rdb.Incr(cctx, versionKey).Result(); err != nil {
		return fmt.Errorf("bump version failed: %w", err)
	}
	return nil
}
