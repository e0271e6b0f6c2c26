// Package report renders solver answers as plain text or YAML.
package report

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"

	"aoc2023/internal/interval"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

const almanacDay = 5

// Result is one solved part of a puzzle.
type Result struct {
	Day    int   `yaml:"day"`
	Part   int   `yaml:"part"`
	Answer int64 `yaml:"answer"`
	// Intervals is the final location set of a range solve.
	Intervals []string `yaml:"intervals,omitempty"`
	// InputBlake3 identifies the input the answer was computed from.
	InputBlake3 string `yaml:"input_blake3"`
}

// New builds the result of an almanac solve. locations may be nil for part one.
func New(part int, answer int64, locations []interval.Interval, input []string) Result {
	r := Result{
		Day:         almanacDay,
		Part:        part,
		Answer:      answer,
		InputBlake3: Fingerprint(input),
	}

	for _, iv := range locations {
		r.Intervals = append(r.Intervals, iv.String())
	}

	return r
}

// Fingerprint hashes the input lines with BLAKE3.
func Fingerprint(lines []string) string {
	sum := blake3.Sum256([]byte(strings.Join(lines, "\n")))

	return hex.EncodeToString(sum[:])
}

// Marshal serializes a Result to YAML.
func Marshal(r Result) ([]byte, error) {
	return yaml.Marshal(r)
}

// Write renders r to w in the given format.
func Write(w io.Writer, r Result, format string) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintln(w, r.Answer)
		if err != nil {
			return fmt.Errorf("failed to write answer: %w", err)
		}

		return nil
	case FormatYAML:
		data, err := Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}

		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
