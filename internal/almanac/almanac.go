package almanac

import (
	"aoc2023/internal/interval"
	"aoc2023/utils"
)

// Almanac is a parsed puzzle input.
type Almanac struct {
	// Seeds are the raw numbers of the seeds line.
	Seeds []int64
	// SeedsLine is the 1-based line the seeds were read from.
	SeedsLine int
	Pipeline  *Pipeline
}

// SeedIntervals reads Seeds as (start, length) pairs.
func (a *Almanac) SeedIntervals() ([]interval.Interval, error) {
	pairs, ok := utils.Pairs(a.Seeds)
	if !ok {
		return nil, &ParseError{Line: a.SeedsLine, Text: "seeds", Err: ErrOddSeeds}
	}

	out := make([]interval.Interval, 0, len(pairs))
	for _, p := range pairs {
		iv, err := interval.FromStart(p[0], p[1])
		if err != nil {
			return nil, &ParseError{Line: a.SeedsLine, Text: "seeds", Err: err}
		}

		out = append(out, iv)
	}

	return out, nil
}

// LowestLocation maps every seed value on its own and returns the smallest result.
func (a *Almanac) LowestLocation() (int64, error) {
	if len(a.Seeds) == 0 {
		return 0, ErrNoSeeds
	}

	lowest := a.Pipeline.Lookup(a.Seeds[0])
	for _, seed := range a.Seeds[1:] {
		lowest = min(lowest, a.Pipeline.Lookup(seed))
	}

	return lowest, nil
}

// RangeLocations maps the seed intervals through the pipeline.
func (a *Almanac) RangeLocations() ([]interval.Interval, error) {
	seeds, err := a.SeedIntervals()
	if err != nil {
		return nil, err
	}

	return a.Pipeline.Apply(seeds), nil
}

// LowestRangeLocation returns the smallest location reachable from any seed interval.
func (a *Almanac) LowestRangeLocation() (int64, error) {
	locations, err := a.RangeLocations()
	if err != nil {
		return 0, err
	}

	lowest, ok := interval.MinLow(locations)
	if !ok {
		return 0, ErrNoSeeds
	}

	return lowest, nil
}

// PartOne parses lines and returns the lowest location of the individual seeds.
func PartOne(lines []string, opts ...Option) (int64, error) {
	a, err := Parse(lines, opts...)
	if err != nil {
		return 0, err
	}

	return a.LowestLocation()
}

// PartTwo parses lines and returns the lowest location of the seed intervals.
func PartTwo(lines []string, opts ...Option) (int64, error) {
	a, err := Parse(lines, opts...)
	if err != nil {
		return 0, err
	}

	return a.LowestRangeLocation()
}
