// Package diagnostic provides structured, non-fatal findings about a parsed
// almanac: overlapping rules, stages that do not chain, empty stages.
//
// Parse failures are not diagnostics; they abort parsing and are returned
// as errors by the almanac package.
package diagnostic
