package interval

//go:generate go tool stringer -type=SplitCase -output=split_case_string.go

// SplitCase names how an interval lies relative to a rule's source range.
type SplitCase int

const (
	_ SplitCase = iota // zero value is not a valid case

	SplitDisjoint // no shared values
	SplitCovered  // rule range contains the interval
	SplitInner    // interval strictly contains the rule range on both ends
	SplitLow      // interval sticks out below the rule range only
	SplitHigh     // interval sticks out above the rule range only

	// SplitTotal is the number of cases defined
	SplitTotal = int(iota)
)

// Classify reports which SplitCase applies to iv against rule.
// Cases are checked in the same priority order IntersectAndSplit uses.
func (iv Interval) Classify(rule Interval) SplitCase {
	switch {
	case !iv.Overlaps(rule):
		return SplitDisjoint
	case rule.Contains(iv):
		return SplitCovered
	case iv.Low < rule.Low && iv.High > rule.High:
		return SplitInner
	case iv.Low < rule.Low:
		return SplitLow
	default:
		return SplitHigh
	}
}

// IntersectAndSplit cuts iv against rule. overlap is the part of iv inside rule
// and leftovers are the zero, one or two parts outside it. ok is false when
// the two do not overlap, in which case overlap is the zero Interval.
//
// The overlap and leftovers together cover iv exactly, without gaps or
// shared values.
func (iv Interval) IntersectAndSplit(rule Interval) (overlap Interval, leftovers []Interval, ok bool) {
	switch iv.Classify(rule) {
	case SplitCovered:
		return iv, nil, true
	case SplitInner:
		leftovers = appendValid(leftovers, iv.Low, rule.Low-1)
		leftovers = appendValid(leftovers, rule.High+1, iv.High)

		return rule, leftovers, true
	case SplitLow:
		leftovers = appendValid(leftovers, iv.Low, rule.Low-1)

		return Interval{Low: rule.Low, High: iv.High}, leftovers, true
	case SplitHigh:
		leftovers = appendValid(leftovers, rule.High+1, iv.High)

		return Interval{Low: iv.Low, High: rule.High}, leftovers, true
	default:
		return Interval{}, nil, false
	}
}

// appendValid appends [low, high] unless it would be degenerate.
func appendValid(dst []Interval, low, high int64) []Interval {
	if low > high {
		return dst
	}

	return append(dst, Interval{Low: low, High: high})
}
