package patchwork

import (
	"iter"
	"slices"
	"sync"
)

// Accumulator is the append-only list of patches produced so far.
//
// One goroutine appends while any number of others read; readers work on
// snapshots, fixed-length prefixes that later appends never touch.
type Accumulator struct {
	mu    sync.RWMutex
	lines []Polyline
}

// Append adds pl to the end of the list. The accumulator takes ownership of
// pl; it must not be modified afterwards.
func (acc *Accumulator) Append(pl Polyline) {
	acc.mu.Lock()
	acc.lines = append(acc.lines, pl)
	acc.mu.Unlock()
}

func (acc *Accumulator) Len() int {
	acc.mu.RLock()
	defer acc.mu.RUnlock()
	return len(acc.lines)
}

// Snapshot returns the patches appended so far, in order. The result must be
// treated as read-only. It is not affected by later appends.
func (acc *Accumulator) Snapshot() []Polyline {
	acc.mu.RLock()
	defer acc.mu.RUnlock()
	return slices.Clip(acc.lines)
}

// Lines returns an iterator over a snapshot of the patches.
func (acc *Accumulator) Lines() iter.Seq[Polyline] {
	return slices.Values(acc.Snapshot())
}
