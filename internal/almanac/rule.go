package almanac

import (
	"fmt"

	"aoc2023/internal/interval"
)

// Rule translates every value of Source onto Dest, keeping its position.
type Rule struct {
	Source interval.Interval
	Dest   interval.Interval
	// Line is the 1-based input line the rule was read from, or 0.
	Line int
}

// NewRule builds a rule from the "destStart sourceStart length" triple of the input.
func NewRule(destStart, sourceStart, length int64) (Rule, error) {
	source, err := interval.FromStart(sourceStart, length)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %w", ErrBadRule, err)
	}

	dest, err := interval.FromStart(destStart, length)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %w", ErrBadRule, err)
	}

	return Rule{Source: source, Dest: dest}, nil
}

// Offset is the distance every source value moves.
func (r Rule) Offset() int64 {
	return r.Dest.Low - r.Source.Low
}

// Apply translates iv into destination coordinates.
// iv must lie inside Source; anything else is a bug in the caller and panics
// with a *PreconditionError.
func (r Rule) Apply(iv interval.Interval) interval.Interval {
	if !r.Source.Contains(iv) {
		panic(&PreconditionError{Rule: r, Interval: iv})
	}

	return iv.Shift(r.Offset())
}

// MapValue translates a single value, reporting false if Source does not cover it.
func (r Rule) MapValue(v int64) (int64, bool) {
	if !r.Source.Covers(v) {
		return v, false
	}

	return v + r.Offset(), true
}

func (r Rule) String() string {
	return fmt.Sprintf("%v -> %v", r.Source, r.Dest)
}
