// Package purge implements the cache-invalidation engine: it classifies
// mutation notifications, expands changed entities into the URL set they
// affect, accumulates that set over one epoch, and flushes it exactly once.
package purge

import (
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/sweep/internal/core/domain"
)

// Epoch accumulates invalidation state for one unit of work: the URL set, a
// monotonic full-purge latch, and pre-mutation status snapshots keyed by
// item ID. One epoch is accumulating at a time per instance; concurrent
// units of work each own their own Epoch.
type Epoch struct {
	mu        sync.Mutex
	id        string
	urls      domain.URLSet
	fullPurge bool
	preStatus map[int64]string
}

// NewEpoch creates an empty epoch ready to accumulate.
func NewEpoch() *Epoch {
	e := &Epoch{}
	e.rearm()
	return e
}

// ID returns the epoch's correlation ID for diagnostics. Reset assigns a
// fresh one.
func (e *Epoch) ID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.id
}

// RecordPreStatus stores an item's status as observed before a mutation,
// overwriting any earlier snapshot for the same item within this epoch.
func (e *Epoch) RecordPreStatus(itemID int64, status string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.preStatus[itemID] = status
}

// PreStatus returns the recorded pre-mutation status for an item. Entries
// stay readable for the rest of the epoch and are cleared only by Reset.
func (e *Epoch) PreStatus(itemID int64) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	status, ok := e.preStatus[itemID]
	return status, ok
}

// Merge unions a URL set into the epoch. Merging is idempotent; repeating a
// merge with identical arguments changes nothing.
func (e *Epoch) Merge(urls domain.URLSet) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.urls.Merge(urls)
}

// LatchFullPurge sets the full-purge flag. The latch is monotonic: once set
// it stays set until Reset, and setting it again is a no-op.
func (e *Epoch) LatchFullPurge() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fullPurge = true
}

// FullPurgeLatched reports whether a full purge has been latched.
func (e *Epoch) FullPurgeLatched() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fullPurge
}

// Drain snapshots the accumulated URL set and the latch for flushing. The
// flusher calls Reset separately so that a failed flush still leaves the
// epoch clean.
func (e *Epoch) Drain() (domain.URLSet, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	urls := make(domain.URLSet, len(e.urls))
	urls.Merge(e.urls)
	return urls, e.fullPurge
}

// Len returns the number of URLs currently flagged for purge.
func (e *Epoch) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.urls.Len()
}

// Reset returns the epoch to its initial empty state: URL set empty, latch
// false, pre-status map empty. It runs unconditionally after every flush so
// a permanent transport failure cannot wedge the epoch.
func (e *Epoch) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rearm()
}

func (e *Epoch) rearm() {
	e.id = uuid.NewString()
	e.urls = domain.NewURLSet()
	e.fullPurge = false
	e.preStatus = make(map[int64]string)
}
