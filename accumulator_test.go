package patchwork

import (
	"slices"
	"sync"
	"testing"
)

func TestAccumulatorSnapshot(t *testing.T) {
	var acc Accumulator
	a := ClosePolyline(pts(0, 0, 1, 0, 0, 1))
	b := ClosePolyline(pts(5, 5, 6, 5, 5, 6))

	acc.Append(a)
	snap := acc.Snapshot()
	acc.Append(b)

	diff(t, []Polyline{a}, snap)
	diff(t, []Polyline{a, b}, acc.Snapshot())
	diff(t, []Polyline{a, b}, slices.Collect(acc.Lines()))
	if n := acc.Len(); n != 2 {
		t.Errorf("got length %d, want 2", n)
	}

	// Appending to a snapshot must not affect the accumulator.
	_ = append(snap, b)
	diff(t, []Polyline{a, b}, acc.Snapshot())
}

func TestAccumulatorConcurrentReaders(t *testing.T) {
	var acc Accumulator
	pl := ClosePolyline(pts(0, 0, 1, 0, 0, 1))

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prev := 0
			for range 1000 {
				snap := acc.Snapshot()
				if len(snap) < prev {
					t.Errorf("snapshot shrank from %d to %d", prev, len(snap))
					return
				}
				for _, got := range snap {
					if !got.Valid() {
						t.Errorf("invalid polyline %v in snapshot", got)
						return
					}
				}
				prev = len(snap)
			}
		}()
	}
	for range 1000 {
		acc.Append(pl)
	}
	wg.Wait()
	if n := acc.Len(); n != 1000 {
		t.Errorf("got %d polylines, want 1000", n)
	}
}
