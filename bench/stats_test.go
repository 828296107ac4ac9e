package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSummarize(t *testing.T) {
	assert := assert.New(t)

	samples := []Sample{
		{Elapsed: 400 * time.Nanosecond, Ops: 100, Bytes: 10, Allocs: 1},
		{Elapsed: 200 * time.Nanosecond, Ops: 100, Bytes: 30, Allocs: 3},
		{Elapsed: 600 * time.Nanosecond, Ops: 100, Bytes: 20, Allocs: 2},
		{Elapsed: 800 * time.Nanosecond, Ops: 100, Bytes: 0, Allocs: 0},
	}
	s, err := summarize(samples)
	require.NoError(t, err)
	assert.Equal(4, s.Samples)
	assert.InDelta(5.0, s.Mean, 1e-9)
	assert.InDelta(5.0, s.Median, 1e-9)
	assert.InDelta(2.0, s.Min, 1e-9)
	assert.InDelta(8.0, s.Max, 1e-9)
	assert.InDelta(2.2360679, s.StdDev, 1e-6)
	assert.InDelta(15.0, s.Bytes, 1e-9)
	assert.InDelta(1.5, s.Allocs, 1e-9)

	empty, err := summarize(nil)
	require.NoError(t, err)
	assert.Equal(Stats{}, empty)
}

func TestSummarizeBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		n := rapid.IntRange(1, 50).Draw(t, "n")
		samples := make([]Sample, n)
		for i := range samples {
			samples[i] = Sample{
				Elapsed: time.Duration(rapid.Int64Range(0, 1e9).Draw(t, "elapsed")),
				Ops:     rapid.IntRange(1, 1000).Draw(t, "ops"),
			}
		}
		s, err := summarize(samples)
		require.NoError(t, err)
		assert.LessOrEqual(s.Min, s.Median)
		assert.LessOrEqual(s.Median, s.Max)
		assert.LessOrEqual(s.Min, s.Mean+1e-6)
		assert.LessOrEqual(s.Mean, s.Max+1e-6)
		assert.GreaterOrEqual(s.StdDev, 0.0)
	})
}

func TestSummarizeOddMedian(t *testing.T) {
	samples := []Sample{
		{Elapsed: 9 * time.Nanosecond, Ops: 1},
		{Elapsed: 1 * time.Nanosecond, Ops: 1},
		{Elapsed: 3 * time.Nanosecond, Ops: 1},
	}
	s, err := summarize(samples)
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.Median)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
}

func TestChainStats(t *testing.T) {
	cs := chainStats([]int{0, 3, 1, 0})
	assert.Equal(t, ChainStats{Slots: 4, Pairs: 4, Empty: 2, Longest: 3, LoadFactor: 1}, cs)
	assert.Equal(t, ChainStats{}, chainStats(nil))
}
