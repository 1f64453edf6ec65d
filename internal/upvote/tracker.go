// Package upvote implements the optimistic counter handling for the one
// contended mutation in the system. A Tracker is scoped to a single browser
// session; overrides vanish on reload, when the server count takes over
// again.
package upvote

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// WriteFunc performs the backing store write for one click, given the count
// the user had on screen when they clicked.
type WriteFunc func(ctx context.Context, observedCount int) error

// Tracker keeps per-idea display overrides so a click shows count+1
// immediately, before the write lands. Each row moves
// Stable(n) → Pending(n+1) → Stable(n+1) on success, or back to Stable(n)
// on failure. Failed writes are never retried here.
type Tracker struct {
	mu        sync.Mutex
	overrides map[uuid.UUID]int
}

func NewTracker() *Tracker {
	return &Tracker{overrides: make(map[uuid.UUID]int)}
}

// Displayed merges the server-fetched count with any local override.
func (t *Tracker) Displayed(id uuid.UUID, serverCount int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n, ok := t.overrides[id]; ok {
		return n
	}
	return serverCount
}

// Upvote handles one click: the displayed count becomes observed+1 at once,
// then write runs with the observed count. On failure the display rolls
// back to the pre-click count and the error is returned for the caller to
// surface. The returned value is what the row should show now.
func (t *Tracker) Upvote(ctx context.Context, id uuid.UUID, serverCount int, write WriteFunc) (int, error) {
	t.mu.Lock()
	observed, pending := t.overrides[id]
	if !pending {
		observed = serverCount
	}
	t.overrides[id] = observed + 1
	t.mu.Unlock()

	if err := write(ctx, observed); err != nil {
		t.mu.Lock()
		if pending {
			t.overrides[id] = observed
		} else {
			delete(t.overrides, id)
		}
		t.mu.Unlock()
		return observed, err
	}
	return observed + 1, nil
}

// Reset drops all overrides, reconciling the display with the server on the
// next fetch.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.overrides = make(map[uuid.UUID]int)
}
