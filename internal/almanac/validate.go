package almanac

import (
	"fmt"

	"aoc2023/internal/common"
	"aoc2023/internal/diagnostic"
)

// Validate reports problems the puzzle input is assumed not to have.
// None of them stop the almanac from being solved.
func Validate(a *Almanac) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	var prev *Stage

	for i := range a.Pipeline.Stages {
		s := &a.Pipeline.Stages[i]

		if common.IsEmpty(s.Rules) {
			d.AddInfo(diagnostic.CodeEmptyStage, "stage has no rules and maps every value to itself", s.Name, s.Line)
		}

		for j, r := range s.Rules {
			for _, other := range s.Rules[j+1:] {
				if r.Source.Overlaps(other.Source) {
					d.AddWarning(diagnostic.CodeOverlappingRules,
						fmt.Sprintf("source %v overlaps source %v from line %d", other.Source, r.Source, r.Line),
						s.Name, other.Line)
				}
			}
		}

		if prev != nil && prev.To != "" && s.From != "" && prev.To != s.From {
			d.AddWarning(diagnostic.CodeBrokenChain,
				fmt.Sprintf("stage starts from %q but previous stage %q ends at %q", s.From, prev.Name, prev.To),
				s.Name, s.Line)
		}

		prev = s
	}

	return d
}
