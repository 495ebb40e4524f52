package models

import "sync"

// DefaultLogRingCapacity bounds the recent-log buffer kept in memory per
// master action. Older lines remain available in the journal.
const DefaultLogRingCapacity = 1000

// LogRing is a fixed-capacity ring buffer of pre-formatted log lines.
// Appends past capacity evict the oldest line.
type LogRing struct {
	mu    sync.Mutex
	lines []string
	head  int
	full  bool
}

// NewLogRing creates a ring holding at most capacity lines. A non-positive
// capacity falls back to DefaultLogRingCapacity.
func NewLogRing(capacity int) *LogRing {
	if capacity <= 0 {
		capacity = DefaultLogRingCapacity
	}
	return &LogRing{lines: make([]string, capacity)}
}

// Append adds a line, evicting the oldest when the ring is full.
func (r *LogRing) Append(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines[r.head] = line
	r.head = (r.head + 1) % len(r.lines)
	if r.head == 0 {
		r.full = true
	}
}

// Len returns the number of retained lines.
func (r *LogRing) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return len(r.lines)
	}
	return r.head
}

// Lines returns the retained lines in append order, oldest first.
func (r *LogRing) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full {
		out := make([]string, r.head)
		copy(out, r.lines[:r.head])
		return out
	}
	out := make([]string, 0, len(r.lines))
	out = append(out, r.lines[r.head:]...)
	out = append(out, r.lines[:r.head]...)
	return out
}
