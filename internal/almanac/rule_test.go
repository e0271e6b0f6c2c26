package almanac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/interval"
)

func TestNewRule(t *testing.T) {
	r, err := NewRule(50, 98, 2)
	require.NoError(t, err)
	assert.Equal(t, interval.Interval{Low: 98, High: 99}, r.Source)
	assert.Equal(t, interval.Interval{Low: 50, High: 51}, r.Dest)
	assert.Equal(t, int64(-48), r.Offset())
	assert.Equal(t, "[98, 99] -> [50, 51]", r.String())

	_, err = NewRule(50, 98, 0)
	require.ErrorIs(t, err, ErrBadRule)
	require.ErrorIs(t, err, interval.ErrInvalidBounds)
}

func TestRuleApply(t *testing.T) {
	r, err := NewRule(50, 98, 2)
	require.NoError(t, err)
	assert.Equal(t, interval.Interval{Low: 50, High: 50}, r.Apply(interval.Interval{Low: 98, High: 98}))
	assert.Equal(t, interval.Interval{Low: 50, High: 51}, r.Apply(interval.Interval{Low: 98, High: 99}))

	r, err = NewRule(52, 50, 48)
	require.NoError(t, err)
	assert.Equal(t, interval.Interval{Low: 55, High: 55}, r.Apply(interval.Interval{Low: 53, High: 53}))
}

func TestRuleApplyOutsideSourcePanics(t *testing.T) {
	r, err := NewRule(50, 98, 2)
	require.NoError(t, err)

	assert.PanicsWithError(t, "interval [97, 98] is not inside rule source [98, 99]", func() {
		r.Apply(interval.Interval{Low: 97, High: 98})
	})
}

func TestRuleMapValue(t *testing.T) {
	r, err := NewRule(50, 98, 2)
	require.NoError(t, err)

	v, ok := r.MapValue(10)
	assert.False(t, ok)
	assert.Equal(t, int64(10), v)

	v, ok = r.MapValue(98)
	assert.True(t, ok)
	assert.Equal(t, int64(50), v)

	v, ok = r.MapValue(99)
	assert.True(t, ok)
	assert.Equal(t, int64(51), v)

	r, err = NewRule(52, 50, 48)
	require.NoError(t, err)

	for value := int64(50); value < 98; value++ {
		v, ok := r.MapValue(value)
		require.True(t, ok)
		require.Equal(t, value+2, v)
	}
}
