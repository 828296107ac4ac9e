package bench

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
)

// Sample is the measurement of one batch.
type Sample struct {
	Elapsed time.Duration
	Ops     int
	Bytes   uint64
	Allocs  uint64
}

// NsPerOp returns the batch time divided by its operation count.
func (s Sample) NsPerOp() float64 {
	if s.Ops == 0 {
		return 0
	}
	return float64(s.Elapsed.Nanoseconds()) / float64(s.Ops)
}

// Stats summarizes the samples of one subject and operation. Times are in
// nanoseconds per operation; bytes and allocations are means per batch.
type Stats struct {
	Samples int     `json:"samples"`
	Mean    float64 `json:"mean_ns"`
	Median  float64 `json:"median_ns"`
	Min     float64 `json:"min_ns"`
	Max     float64 `json:"max_ns"`
	StdDev  float64 `json:"stddev_ns"`
	Bytes   float64 `json:"bytes_per_batch"`
	Allocs  float64 `json:"allocs_per_batch"`
}

// summarize returns the zero Stats for no samples.
func summarize(samples []Sample) (Stats, error) {
	if len(samples) == 0 {
		return Stats{}, nil
	}

	times := make(stats.Float64Data, len(samples))
	bytes := make(stats.Float64Data, len(samples))
	allocs := make(stats.Float64Data, len(samples))
	for i, s := range samples {
		times[i] = s.NsPerOp()
		bytes[i] = float64(s.Bytes)
		allocs[i] = float64(s.Allocs)
	}

	out := Stats{Samples: len(samples)}
	for _, f := range []struct {
		dst  *float64
		data stats.Float64Data
		fn   func(stats.Float64Data) (float64, error)
	}{
		{&out.Mean, times, stats.Mean},
		{&out.Median, times, stats.Median},
		{&out.Min, times, stats.Min},
		{&out.Max, times, stats.Max},
		{&out.StdDev, times, stats.StandardDeviationPopulation},
		{&out.Bytes, bytes, stats.Mean},
		{&out.Allocs, allocs, stats.Mean},
	} {
		v, err := f.fn(f.data)
		if err != nil {
			return Stats{}, fmt.Errorf("summarize %d samples: %w", len(samples), err)
		}
		*f.dst = v
	}

	return out, nil
}

// ChainStats describes how keys spread over a populated chained table.
type ChainStats struct {
	Slots      int     `json:"slots"`
	Pairs      int     `json:"pairs"`
	Empty      int     `json:"empty_slots"`
	Longest    int     `json:"longest_chain"`
	LoadFactor float64 `json:"load_factor"`
}

func chainStats(lengths []int) ChainStats {
	cs := ChainStats{Slots: len(lengths)}
	for _, n := range lengths {
		cs.Pairs += n
		if n == 0 {
			cs.Empty++
		}
		cs.Longest = max(cs.Longest, n)
	}
	if cs.Slots > 0 {
		cs.LoadFactor = float64(cs.Pairs) / float64(cs.Slots)
	}
	return cs
}
