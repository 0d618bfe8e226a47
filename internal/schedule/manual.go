package schedule

import (
	"sort"
	"sync"
	"time"
)

type manualEntry struct {
	handle Handle
	due    time.Duration
	seq    int
	fn     func()
}

// Manual is a Scheduler whose time only moves when Advance is called.
// Callbacks run synchronously inside Advance, in due order.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending map[Handle]manualEntry
}

// NewManual returns a Manual clock at elapsed time zero.
func NewManual() *Manual {
	return &Manual{pending: make(map[Handle]manualEntry)}
}

func (m *Manual) Schedule(delay time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	h := newHandle()
	m.seq++
	m.pending[h] = manualEntry{handle: h, due: m.now + delay, seq: m.seq, fn: fn}
	return h
}

func (m *Manual) Cancel(h Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, h)
}

// Advance moves time forward by d and runs every callback that became due.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	var due []manualEntry
	for h, e := range m.pending {
		if e.due <= m.now {
			due = append(due, e)
			delete(m.pending, h)
		}
	}
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, e := range due {
		e.fn()
	}
}

// Elapsed returns the total time advanced so far.
func (m *Manual) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of scheduled callbacks not yet run or cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
