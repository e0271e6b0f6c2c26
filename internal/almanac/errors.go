package almanac

import (
	"errors"
	"fmt"

	"aoc2023/internal/interval"
)

var (
	ErrMissingSeeds   = errors.New("missing seeds line")
	ErrOddSeeds       = errors.New("seed list must hold (start, length) pairs")
	ErrBadNumber      = errors.New("malformed number")
	ErrBadHeader      = errors.New("malformed map header")
	ErrBadRule        = errors.New("malformed rule")
	ErrUnexpectedLine = errors.New("unexpected line outside of a map")
	ErrNoSeeds        = errors.New("almanac has no seeds")
)

// ParseError reports a fatal problem with one line of almanac input.
type ParseError struct {
	// Line is 1-based; 0 means the input as a whole.
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// PreconditionError is the panic value raised when a rule is asked to
// translate an interval that is not inside its source range.
type PreconditionError struct {
	Rule     Rule
	Interval interval.Interval
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("interval %v is not inside rule source %v", e.Interval, e.Rule.Source)
}
