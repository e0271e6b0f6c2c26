package almanac

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"aoc2023/internal/interval"
	"aoc2023/internal/lines"
)

func sampleLines(t testing.TB) []string {
	t.Helper()

	in, err := lines.ReadFile("testdata/sample.txt")
	require.NoError(t, err)

	return in
}

func TestAlmanacLookup(t *testing.T) {
	a, err := Parse(sampleLines(t))
	require.NoError(t, err)

	tests := []struct {
		seed     int64
		location int64
	}{
		{79, 82},
		{14, 43},
		{55, 86},
		{13, 35},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.seed), func(t *testing.T) {
			assert.Equal(t, tt.location, a.Pipeline.Lookup(tt.seed))
		})
	}
}

func TestPartOne(t *testing.T) {
	got, err := PartOne(sampleLines(t))
	require.NoError(t, err)
	assert.Equal(t, int64(35), got)
}

func TestPartTwo(t *testing.T) {
	got, err := PartTwo(sampleLines(t))
	require.NoError(t, err)
	assert.Equal(t, int64(46), got)
}

func TestSeedIntervals(t *testing.T) {
	a, err := Parse(sampleLines(t))
	require.NoError(t, err)

	seeds, err := a.SeedIntervals()
	require.NoError(t, err)
	assert.Equal(t, []interval.Interval{{Low: 79, High: 92}, {Low: 55, High: 67}}, seeds)
}

// Every stage is a bijection on the values it is given.
func TestPipelinePreservesWidth(t *testing.T) {
	a, err := Parse(sampleLines(t))
	require.NoError(t, err)

	current, err := a.SeedIntervals()
	require.NoError(t, err)

	width := interval.TotalWidth(current)
	require.Equal(t, int64(27), width)

	for _, s := range a.Pipeline.Stages {
		current = s.Apply(current)
		assert.Equal(t, width, interval.TotalWidth(current), "stage %s changed width:\n%s", s.Name, spew.Sdump(current))
	}
}

// Range mapping must agree with mapping every seed value on its own.
func TestPipelineApplyMatchesLookup(t *testing.T) {
	a, err := Parse(sampleLines(t))
	require.NoError(t, err)

	seeds, err := a.SeedIntervals()
	require.NoError(t, err)

	locations := a.Pipeline.Apply(seeds)

	covered := func(v int64) bool {
		for _, iv := range locations {
			if iv.Covers(v) {
				return true
			}
		}

		return false
	}

	lowest := int64(-1)

	for _, s := range seeds {
		for v := s.Low; v <= s.High; v++ {
			loc := a.Pipeline.Lookup(v)
			require.True(t, covered(loc), "location %d of seed %d missing", loc, v)

			if lowest < 0 || loc < lowest {
				lowest = loc
			}
		}
	}

	got, ok := interval.MinLow(locations)
	require.True(t, ok)
	assert.Equal(t, lowest, got)
}

func TestOddSeedsOnlyFailPartTwo(t *testing.T) {
	in := []string{"seeds: 79 14 55", "", "seed-to-soil map:", "50 98 2"}

	got, err := PartOne(in)
	require.NoError(t, err)
	assert.Equal(t, int64(14), got)

	_, err = PartTwo(in)
	require.ErrorIs(t, err, ErrOddSeeds)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
}

func TestNoSeeds(t *testing.T) {
	in := []string{"seeds:", "", "seed-to-soil map:", "50 98 2"}

	_, err := PartOne(in)
	require.ErrorIs(t, err, ErrNoSeeds)

	_, err = PartTwo(in)
	require.ErrorIs(t, err, ErrNoSeeds)
}

func TestZeroLengthSeedRange(t *testing.T) {
	_, err := PartTwo([]string{"seeds: 79 0"})
	require.ErrorIs(t, err, interval.ErrInvalidBounds)
}

func TestPipelineLogsStages(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	a, err := Parse(sampleLines(t), WithLogger(zap.New(core)))
	require.NoError(t, err)

	got, err := a.LowestRangeLocation()
	require.NoError(t, err)
	assert.Equal(t, int64(46), got)

	assert.Equal(t, 7, logs.FilterMessage("stage start").Len())
	assert.Equal(t, 7, logs.FilterMessage("stage done").Len())
	assert.Equal(t, 1, logs.FilterMessage("stage done").FilterField(zap.String("stage", "humidity-to-location")).Len())
	assert.NotZero(t, logs.FilterMessage("mapped").Len())
}

func ExamplePartTwo() {
	in := []string{
		"seeds: 79 14 55 13",
		"",
		"seed-to-soil map:",
		"50 98 2",
		"52 50 48",
	}

	lowest, err := PartTwo(in)
	fmt.Println(lowest, err)

	// Output:
	// 57 <nil>
}
