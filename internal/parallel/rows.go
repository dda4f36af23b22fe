// Package parallel provides row-partitioned parallel execution for the
// posterize pipeline.
//
// An image of height H is split into contiguous half-open row ranges, one
// per worker. The ranges are disjoint and cover [0, H) exactly, so workers
// can write their own rows of a shared output buffer without locking.
//
// Thread safety: RowRange values are immutable. WorkerPool is safe for
// concurrent use.
package parallel

import "fmt"

// RowRange is the half-open row interval [StartY, EndY).
type RowRange struct {
	StartY int
	EndY   int
}

// Height returns the number of rows in the range.
func (r RowRange) Height() int {
	return r.EndY - r.StartY
}

// Empty reports whether the range contains no rows.
func (r RowRange) Empty() bool {
	return r.EndY <= r.StartY
}

// Contains reports whether row y lies in the range.
func (r RowRange) Contains(y int) bool {
	return y >= r.StartY && y < r.EndY
}

// String implements fmt.Stringer.
func (r RowRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.StartY, r.EndY)
}

// SplitRows partitions [0, height) into contiguous ranges, one per worker.
//
// Every range but the last has height/workers rows; the last range always
// ends at height and absorbs the remainder. workers is capped at height so
// no range is empty, and values below 1 are treated as 1.
// Returns nil for height <= 0.
func SplitRows(height, workers int) []RowRange {
	if height <= 0 {
		return nil
	}
	workers = max(1, min(workers, height))

	sliceHeight := height / workers
	ranges := make([]RowRange, workers)
	startY := 0
	for i := range ranges {
		endY := startY + sliceHeight
		if i == workers-1 {
			endY = height
		}
		ranges[i] = RowRange{StartY: startY, EndY: endY}
		startY = endY
	}
	return ranges
}

// ForRows splits [0, height) across the pool's workers and runs fn once per
// range. It returns after every range finished, with the first error.
func (p *WorkerPool) ForRows(height int, fn func(RowRange) error) error {
	ranges := SplitRows(height, p.workers)
	work := make([]func() error, len(ranges))
	for i, r := range ranges {
		work[i] = func() error { return fn(r) }
	}
	return p.ExecuteAll(work)
}
