package calibrate_test

import (
	"testing"

	"github.com/katalvlaran/udtrain/calibrate"
	"github.com/stretchr/testify/require"
)

// TestPoolAdjacentViolatorsWorkedExample reproduces spec §8's example:
// [0.5,0.6,0.4,0.7,0.8] -> [0.5,0.5,0.5,0.7,0.8].
func TestPoolAdjacentViolatorsWorkedExample(t *testing.T) {
	in := []calibrate.Bin{
		{Probability: 0.5},
		{Probability: 0.6},
		{Probability: 0.4},
		{Probability: 0.7},
		{Probability: 0.8},
	}
	out := calibrate.PoolAdjacentViolators(in)

	got := make([]float64, len(out))
	for i, b := range out {
		got[i] = b.Probability
	}
	require.Equal(t, []float64{0.5, 0.5, 0.5, 0.7, 0.8}, got)
}

func TestPoolAdjacentViolatorsAlreadyMonotone(t *testing.T) {
	in := []calibrate.Bin{{Probability: 0.1}, {Probability: 0.5}, {Probability: 0.9}}
	out := calibrate.PoolAdjacentViolators(in)
	require.Equal(t, in, out)
}

func TestPartitionMinBinsAndMinMargin(t *testing.T) {
	records := make([]calibrate.Record, 0, 12)
	for i := 0; i < 12; i++ {
		records = append(records, calibrate.Record{Margin: float64(i), Correct: i%2 == 0})
	}
	bins := calibrate.Partition(records, 3) // raised to MinBins=5
	require.Len(t, bins, calibrate.MinBins)

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	require.Equal(t, len(records), total)

	require.Equal(t, 0.0, bins[0].MinMargin)
}

func TestPartitionEmpty(t *testing.T) {
	require.Nil(t, calibrate.Partition(nil, 5))
}
