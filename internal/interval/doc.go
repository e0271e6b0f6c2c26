// Package interval provides inclusive int64 ranges and the overlap,
// containment and splitting operations the almanac stages are built on.
//
// Key functions:
//   - New / FromStart: construct validated intervals
//   - Interval.Overlaps / Interval.Contains: range relations
//   - Interval.IntersectAndSplit: cut an interval against a rule's source range
//   - MinLow / TotalWidth: summaries over interval sets
package interval
