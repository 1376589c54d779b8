// Package viewsync keeps a screen's in-memory entity set consistent with the
// remote store. The strategy is deliberate: after every mutation the full
// entity set is re-fetched and replaced wholesale, never patched — the
// displayed state is always a verbatim recent snapshot of the store.
package viewsync

import (
	"context"
	"errors"
	"log"
	"sync"
)

type State int

const (
	Uninitialized State = iota
	Loading
	Ready
)

// ErrBusy is returned when a mutation is issued while another one from the
// same controller has not settled yet (explicit double-submit latch).
var ErrBusy = errors.New("a submission is already in flight")

// Loader fetches the full entity set for the screen on behalf of userID.
type Loader[T any] func(ctx context.Context, userID string) ([]T, error)

// Controller drives one screen. Loads are generation-counted: when a new load
// supersedes an in-flight one, the stale result is discarded, never raced
// against its successor.
type Controller[T any] struct {
	mu       sync.Mutex
	state    State
	userID   string
	known    bool
	entities []T
	load     Loader[T]
	cancel   context.CancelFunc
	gen      int
	busy     bool
}

func NewController[T any](load Loader[T]) *Controller[T] {
	return &Controller[T]{load: load}
}

func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Entities returns the last-known-good snapshot.
func (c *Controller[T]) Entities() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.entities))
	copy(out, c.entities)
	return out
}

// SetIdentity installs the acting identity. A change (including first
// knowledge, and sign-out to "") discards the current entity set and reloads.
func (c *Controller[T]) SetIdentity(ctx context.Context, userID string) error {
	c.mu.Lock()
	if c.known && c.userID == userID {
		c.mu.Unlock()
		return nil
	}
	c.userID = userID
	c.known = true
	c.entities = nil
	c.mu.Unlock()

	return c.Reload(ctx)
}

// Reload fetches the entity set and replaces it wholesale. On failure the
// previous snapshot is kept (transient error policy) and the controller
// returns to Ready with stale data; the error is logged and returned so the
// caller can surface a retry message.
func (c *Controller[T]) Reload(ctx context.Context) error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel() // abandon the superseded load
	}
	loadCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.gen++
	gen := c.gen
	userID := c.userID
	c.state = Loading
	c.mu.Unlock()

	entities, err := c.load(loadCtx, userID)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// a newer load was issued meanwhile; last-issued wins
		return nil
	}
	c.state = Ready
	if err != nil {
		log.Printf("viewsync: reload failed for %q: %v", userID, err)
		return err
	}
	c.entities = entities
	return nil
}

// MutateThenReload awaits the mutation and only then re-issues the read that
// populates the screen. Refresh-after-write is a correctness requirement
// here, not an optimization. Concurrent submissions are rejected with
// ErrBusy.
func (c *Controller[T]) MutateThenReload(ctx context.Context, mutate func(ctx context.Context) error) error {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	c.busy = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
	}()

	mutErr := mutate(ctx)
	// the reload runs even on partial failure: true state comes from the
	// store, not from in-memory deltas
	if err := c.Reload(ctx); err != nil {
		return err
	}
	return mutErr
}
