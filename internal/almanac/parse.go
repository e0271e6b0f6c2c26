package almanac

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = "map:"
	stageJoiner  = "-to-"
)

// Parse reads an almanac: a "seeds:" line followed by blank-line separated
// "<name> map:" blocks of "destStart sourceStart length" rules.
// The first malformed line aborts parsing with a *ParseError.
func Parse(lines []string, opts ...Option) (*Almanac, error) {
	a := &Almanac{}

	i := skipBlank(lines, 0)
	if i == len(lines) {
		return nil, &ParseError{Err: ErrMissingSeeds}
	}

	seeds, err := parseSeeds(lines[i])
	if err != nil {
		return nil, &ParseError{Line: i + 1, Text: lines[i], Err: err}
	}

	a.Seeds = seeds
	a.SeedsLine = i + 1

	var (
		stages  []Stage
		current *Stage
	)

	flush := func() {
		if current != nil {
			stages = append(stages, *current)
			current = nil
		}
	}

	for i++; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		switch {
		case line == "":
			flush()
		case strings.HasSuffix(line, headerSuffix):
			flush()

			stage, err := parseHeader(line)
			if err != nil {
				return nil, &ParseError{Line: i + 1, Text: lines[i], Err: err}
			}

			stage.Line = i + 1
			current = &stage
		case current != nil:
			rule, err := parseRule(line)
			if err != nil {
				return nil, &ParseError{Line: i + 1, Text: lines[i], Err: err}
			}

			rule.Line = i + 1
			current.Rules = append(current.Rules, rule)
		default:
			return nil, &ParseError{Line: i + 1, Text: lines[i], Err: ErrUnexpectedLine}
		}
	}

	flush()

	a.Pipeline = NewPipeline(stages, opts...)

	return a, nil
}

func skipBlank(lines []string, from int) int {
	for from < len(lines) && strings.TrimSpace(lines[from]) == "" {
		from++
	}

	return from
}

func parseSeeds(line string) ([]int64, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), seedsPrefix)
	if !ok {
		return nil, ErrMissingSeeds
	}

	return parseNumbers(rest)
}

func parseHeader(line string) (Stage, error) {
	name := strings.TrimSpace(strings.TrimSuffix(line, headerSuffix))
	if name == "" || len(strings.Fields(name)) != 1 {
		return Stage{}, ErrBadHeader
	}

	stage := Stage{Name: name}
	if from, to, ok := strings.Cut(name, stageJoiner); ok {
		if from == "" || to == "" {
			return Stage{}, ErrBadHeader
		}

		stage.From, stage.To = from, to
	}

	return stage, nil
}

func parseRule(line string) (Rule, error) {
	values, err := parseNumbers(line)
	if err != nil {
		return Rule{}, err
	}

	if len(values) != 3 {
		return Rule{}, fmt.Errorf("%w: want 3 numbers, got %d", ErrBadRule, len(values))
	}

	return NewRule(values[0], values[1], values[2])
}

func parseNumbers(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))

	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadNumber, f)
		}

		out = append(out, v)
	}

	return out, nil
}
