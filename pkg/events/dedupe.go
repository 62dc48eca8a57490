package events

import (
	"sync"
	"time"
)

// DedupeWindow remembers upstream message ids for a bounded time so redeliveries
// (webhook retries, websocket session overlap) are dropped before fan-out.
// Memory-only: a restart forgets the window, which is acceptable because
// envelope ids let consumers deduplicate on their side.
type DedupeWindow struct {
	ttl time.Duration

	mu        sync.Mutex
	seen      map[string]time.Time
	lastSweep time.Time

	// now is swappable for tests.
	now func() time.Time
}

// NewDedupeWindow creates a window that remembers ids for ttl.
func NewDedupeWindow(ttl time.Duration) *DedupeWindow {
	return &DedupeWindow{
		ttl:  ttl,
		seen: make(map[string]time.Time),
		now:  time.Now,
	}
}

// Seen records the id and reports whether it was already present within the
// window. Empty ids are never deduplicated.
func (w *DedupeWindow) Seen(id string) bool {
	if id == "" {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	w.sweepLocked(now)

	if expiry, ok := w.seen[id]; ok && now.Before(expiry) {
		return true
	}
	w.seen[id] = now.Add(w.ttl)
	return false
}

// Len returns the number of remembered ids, expired entries included until
// the next sweep.
func (w *DedupeWindow) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.seen)
}

// sweepLocked drops expired entries at most once per half-TTL.
func (w *DedupeWindow) sweepLocked(now time.Time) {
	if now.Sub(w.lastSweep) < w.ttl/2 {
		return
	}
	w.lastSweep = now
	for id, expiry := range w.seen {
		if !now.Before(expiry) {
			delete(w.seen, id)
		}
	}
}
