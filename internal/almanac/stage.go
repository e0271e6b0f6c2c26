package almanac

import (
	"go.uber.org/zap"

	"aoc2023/internal/interval"
)

// Stage maps one category onto the next ("seed-to-soil").
type Stage struct {
	Name  string
	From  string
	To    string
	Rules []Rule
	// Line is the 1-based line of the stage header, or 0.
	Line int
}

// Lookup maps v with the first rule covering it, or returns v unchanged.
func (s Stage) Lookup(v int64) int64 {
	for _, r := range s.Rules {
		if mapped, ok := r.MapValue(v); ok {
			return mapped
		}
	}

	return v
}

// Apply maps every interval of in through the stage.
//
// Each interval is matched against the rules in input order. The part inside
// the first overlapping rule is translated and emitted, while the parts
// outside it go back on the worklist to be matched again. Intervals no rule
// overlaps pass through unchanged. The result covers exactly as many values
// as in.
func (s Stage) Apply(in []interval.Interval) []interval.Interval {
	return s.apply(in, zap.NewNop())
}

func (s Stage) apply(in []interval.Interval, log *zap.Logger) []interval.Interval {
	work := newWorklist(in)
	out := make([]interval.Interval, 0, len(in))

	for {
		iv, ok := work.Next()
		if !ok {
			break
		}

		rule, found := s.firstOverlapping(iv)
		if !found {
			log.Debug("passthrough", zap.Stringer("interval", iv))
			out = append(out, iv)

			continue
		}

		overlap, leftovers, _ := iv.IntersectAndSplit(rule.Source)
		mapped := rule.Apply(overlap)
		out = append(out, mapped)
		work.Push(leftovers...)

		log.Debug("mapped",
			zap.Stringer("interval", iv),
			zap.Stringer("rule", rule.Source),
			zap.Stringer("case", iv.Classify(rule.Source)),
			zap.Stringer("result", mapped),
			zap.Int("leftovers", len(leftovers)))
	}

	log.Debug("stage done",
		zap.Int("in", len(in)),
		zap.Int("out", len(out)),
		zap.Int("requeued", work.Pushed()))

	return out
}

func (s Stage) firstOverlapping(iv interval.Interval) (Rule, bool) {
	for _, r := range s.Rules {
		if iv.Overlaps(r.Source) {
			return r, true
		}
	}

	return Rule{}, false
}
