// Package viewqueue batches book-detail view counts and flushes them to the
// database in the background, so reads never wait on metrics writes.
package viewqueue

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"
)

var (
	dbRef *sql.DB
	ch    chan string // book ids
	done  chan struct{}
	wg    sync.WaitGroup
	once  sync.Once
)

// Start spins up N workers with a buffered channel.
// Suggested: buf=10000, workers=2
func Start(db *sql.DB, buf, workers int) {
	once.Do(func() {
		dbRef = db
		ch = make(chan string, buf)
		done = make(chan struct{})
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go worker()
		}
	})
}

// Enqueue tries to queue a view without blocking.
// If the buffer is full, the view is dropped (acceptable for metrics).
func Enqueue(bookID string) {
	if bookID == "" || ch == nil {
		return
	}
	select {
	case ch <- bookID:
	default:
		// buffer full; drop
	}
}

// Shutdown signals workers to stop, flushes remaining views, and waits.
func Shutdown() {
	if done == nil {
		return
	}
	close(done)
	wg.Wait()
}

// --- internal ---

const (
	batchSize  = 256
	flushEvery = 250 * time.Millisecond
	writeTO    = 500 * time.Millisecond
)

func worker() {
	defer wg.Done()
	tk := time.NewTicker(flushEvery)
	defer tk.Stop()

	// Views collapse to per-book counts before they hit the database, so a
	// hot record costs one row write per flush no matter how often it is read.
	counts := make(map[string]int)

	flush := func() {
		if len(counts) == 0 {
			return
		}
		_ = upsertCounts(counts) // best-effort; errors are ignored for metrics
		clear(counts)
	}

	for {
		select {
		case <-done:
			// drain quickly then flush
			for {
				select {
				case id := <-ch:
					counts[id]++
					if len(counts) >= batchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		case id := <-ch:
			counts[id]++
			if len(counts) >= batchSize {
				flush()
			}
		case <-tk.C:
			flush()
		}
	}
}

func upsertCounts(counts map[string]int) error {
	if len(counts) == 0 {
		return nil
	}
	// VALUES ($1,$2),($3,$4)...
	args := make([]any, 0, len(counts)*2)
	vals := make([]string, 0, len(counts))
	i := 0
	for id, n := range counts {
		vals = append(vals, fmt.Sprintf("($%d,$%d)", 2*i+1, 2*i+2))
		args = append(args, id, n)
		i++
	}
	q := `
	INSERT INTO book_views (book_id, views, last_viewed_at)
	SELECT v.id::uuid, v.n, now()
	FROM (VALUES ` + strings.Join(vals, ",") + `) AS v(id, n)
	WHERE EXISTS (SELECT 1 FROM books b WHERE b.id = v.id::uuid)
	ON CONFLICT (book_id)
	DO UPDATE SET views = book_views.views + EXCLUDED.views,
	              last_viewed_at = EXCLUDED.last_viewed_at`

	ctx, cancel := context.WithTimeout(context.Background(), writeTO)
	defer cancel()
	_, err := dbRef.ExecContext(ctx, q, args...)
	return err
}
