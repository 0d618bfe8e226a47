// Package schedule provides a cancellable one-shot callback capability.
//
// Views never own timers directly. They receive a Scheduler at construction
// time so tests can drive time with a Manual clock.
package schedule

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Handle identifies a scheduled callback. The zero Handle is never issued
// and cancelling it is a no-op.
type Handle struct {
	id uuid.UUID
}

// IsZero reports whether h was never issued.
func (h Handle) IsZero() bool { return h.id == uuid.Nil }

func (h Handle) String() string { return h.id.String() }

func newHandle() Handle { return Handle{id: uuid.New()} }

// Scheduler runs fn once after delay unless the returned handle is cancelled
// first.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Handle
	Cancel(h Handle)
}

// Clock schedules on the wall clock with time.AfterFunc.
type Clock struct {
	mu     sync.Mutex
	timers map[Handle]*time.Timer
}

// NewClock returns a wall-clock Scheduler.
func NewClock() *Clock {
	return &Clock{timers: make(map[Handle]*time.Timer)}
}

func (c *Clock) Schedule(delay time.Duration, fn func()) Handle {
	h := newHandle()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timers[h] = time.AfterFunc(delay, func() {
		c.mu.Lock()
		_, live := c.timers[h]
		delete(c.timers, h)
		c.mu.Unlock()
		if live {
			fn()
		}
	})
	return h
}

func (c *Clock) Cancel(h Handle) {
	if h.IsZero() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.timers[h]; ok {
		t.Stop()
		delete(c.timers, h)
	}
}

// Pending returns the number of callbacks that have neither fired nor been
// cancelled.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}
