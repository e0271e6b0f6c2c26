// Package main provides the CLI entrypoint for aoc2023.
//
// aoc2023 solves the seed almanac puzzle:
//   - Parses the almanac (seeds followed by remapping stages)
//   - Maps individual seeds (part one) or seed ranges (part two) to locations
//   - Prints the lowest location as text or YAML
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
