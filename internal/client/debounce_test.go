package client_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/shravya312/Online-book-Store/internal/client"
)

func TestDebouncer_CoalescesBursts(t *testing.T) {
	d := client.NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int64
	var last atomic.Value

	// A fast burst, like keystrokes: only the final trigger should fire.
	for _, term := range []string{"d", "du", "dun", "dune"} {
		term := term
		d.Trigger(func() {
			calls.Add(1)
			last.Store(term)
		})
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("want exactly 1 call, got %d", got)
	}
	if got := last.Load(); got != "dune" {
		t.Fatalf("want last trigger to win, got %v", got)
	}
}

func TestDebouncer_FiresAgainAfterQuiet(t *testing.T) {
	d := client.NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int64
	d.Trigger(func() { calls.Add(1) })
	time.Sleep(60 * time.Millisecond)
	d.Trigger(func() { calls.Add(1) })
	time.Sleep(60 * time.Millisecond)

	if got := calls.Load(); got != 2 {
		t.Fatalf("want 2 calls across separate quiet periods, got %d", got)
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := client.NewDebouncer(30 * time.Millisecond)

	var calls atomic.Int64
	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Fatalf("stopped debouncer should not fire, got %d calls", got)
	}
}
