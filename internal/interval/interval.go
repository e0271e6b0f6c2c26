package interval

import (
	"errors"
	"fmt"

	"aoc2023/utils"
)

// ErrInvalidBounds is returned when an interval would have Low > High.
var ErrInvalidBounds = errors.New("invalid interval bounds")

// Interval is an inclusive range [Low, High]. Zero-width intervals do not exist:
// a single value v is represented as [v, v].
type Interval struct {
	Low  int64
	High int64
}

// New creates the interval [low, high].
func New(low, high int64) (Interval, error) {
	if !utils.IsOrdered(low, high) {
		return Interval{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidBounds, low, high)
	}

	return Interval{Low: low, High: high}, nil
}

// FromStart creates the interval covering length values beginning at start.
func FromStart(start, length int64) (Interval, error) {
	if length <= 0 {
		return Interval{}, fmt.Errorf("%w: start %d with length %d", ErrInvalidBounds, start, length)
	}

	return New(start, start+length-1)
}

// Width returns the number of values covered by the interval.
func (iv Interval) Width() int64 {
	return iv.High - iv.Low + 1
}

// Covers reports whether value lies inside the interval.
func (iv Interval) Covers(value int64) bool {
	return utils.IsInRange(iv.Low, value, iv.High)
}

// Contains reports whether other lies entirely inside iv.
func (iv Interval) Contains(other Interval) bool {
	return iv.Low <= other.Low && iv.High >= other.High
}

// Overlaps reports whether iv and other share at least one value.
// Touching ranges such as [1, 5] and [6, 10] do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return !(iv.High < other.Low || iv.Low > other.High)
}

// Shift moves both bounds by offset.
func (iv Interval) Shift(offset int64) Interval {
	return Interval{Low: iv.Low + offset, High: iv.High + offset}
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d]", iv.Low, iv.High)
}

// MinLow returns the smallest lower bound in intervals, or false if there are none.
func MinLow(intervals []Interval) (int64, bool) {
	if len(intervals) == 0 {
		return 0, false
	}

	lowest := intervals[0].Low
	for _, iv := range intervals[1:] {
		lowest = min(lowest, iv.Low)
	}

	return lowest, true
}

// TotalWidth sums the widths of intervals.
func TotalWidth(intervals []Interval) int64 {
	var total int64
	for _, iv := range intervals {
		total += iv.Width()
	}

	return total
}
