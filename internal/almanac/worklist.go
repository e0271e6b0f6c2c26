package almanac

import (
	"aoc2023/internal/common"
	"aoc2023/internal/interval"
)

// worklist holds the intervals of one stage that still have to be matched
// against the stage's rules. Order of processing carries no meaning.
type worklist struct {
	pending []interval.Interval
	pushed  int
}

func newWorklist(seed []interval.Interval) *worklist {
	w := &worklist{pending: make([]interval.Interval, 0, len(seed))}
	w.pending = append(w.pending, seed...)

	return w
}

// Push queues leftovers for another round of matching.
func (w *worklist) Push(ivs ...interval.Interval) {
	w.pending = append(w.pending, ivs...)
	w.pushed += len(ivs)
}

// Next takes the most recently queued interval.
func (w *worklist) Next() (interval.Interval, bool) {
	return common.Pop(&w.pending)
}

// Pushed is how many leftovers were requeued since creation.
func (w *worklist) Pushed() int {
	return w.pushed
}
