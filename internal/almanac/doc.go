// Package almanac parses seed almanacs and maps seeds through their stages.
//
// An almanac is a list of seeds followed by an ordered pipeline of stages
// ("seed-to-soil", "soil-to-fertilizer", ...). Each stage is a list of rules
// translating a source range onto a destination range of the same width;
// values no rule covers map to themselves.
//
// Two lookups are provided:
//   - Pipeline.Lookup maps a single value (part one)
//   - Pipeline.Apply maps whole intervals, splitting them wherever they only
//     partially overlap a rule (part two)
package almanac
