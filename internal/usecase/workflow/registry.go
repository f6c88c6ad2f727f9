package workflow

import (
	"sync"
	"time"

	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/errs"
)

// Registry holds open checkouts by id. Each checkout has its own lock so a
// slow payment does not block other renters. Checkouts idle for longer than
// ttl are dropped; a ttl of zero keeps them until removed.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	clock   clock.Clock
	ttl     time.Duration
}

type entry struct {
	mu       sync.Mutex
	checkout *Checkout
	lastUsed time.Time
}

func NewRegistry(clk clock.Clock, ttl time.Duration) *Registry {
	return &Registry{entries: make(map[string]*entry), clock: clk, ttl: ttl}
}

func (r *Registry) Put(c *Checkout) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.clock.Now()
	r.sweepLocked(now)
	r.entries[c.ID] = &entry{checkout: c, lastUsed: now}
}

// With runs fn on the renter's checkout while holding its lock.
func (r *Registry) With(renterID, id string, fn func(c *Checkout) error) (Checkout, error) {
	r.mu.Lock()
	now := r.clock.Now()
	e, ok := r.entries[id]
	if ok && r.expired(e, now) {
		delete(r.entries, id)
		ok = false
	}
	if ok {
		e.lastUsed = now
	}
	r.mu.Unlock()
	if !ok {
		return Checkout{}, errs.ErrCheckoutNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.checkout.RenterID != renterID {
		return Checkout{}, errs.ErrCheckoutForbidden
	}
	if err := fn(e.checkout); err != nil {
		return snapshot(e.checkout), err
	}
	return snapshot(e.checkout), nil
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Sweep drops idle checkouts and reports how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked(r.clock.Now())
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) sweepLocked(now time.Time) int {
	removed := 0
	for id, e := range r.entries {
		if r.expired(e, now) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) expired(e *entry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastUsed) > r.ttl
}

func snapshot(c *Checkout) Checkout {
	out := *c
	if c.Confirmation != nil {
		conf := *c.Confirmation
		out.Confirmation = &conf
	}
	return out
}
