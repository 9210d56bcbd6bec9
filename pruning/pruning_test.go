package pruning_test

import (
	"testing"

	"github.com/katalvlaran/udtrain/hashing"
	"github.com/katalvlaran/udtrain/perceptron"
	"github.com/katalvlaran/udtrain/pruning"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	require.Equal(t, 1.23, pruning.Round2(1.234))
	require.Equal(t, 1.24, pruning.Round2(1.235))
	require.Equal(t, -1.23, pruning.Round2(-1.234))
}

func TestPruneAveragedDropsBelowThresholdKeepsPrecision(t *testing.T) {
	avg := perceptron.Averaged{
		"f1": {"NOUN": 0.999999, "VERB": 2.5},
		"f2": {"NOUN": 0.1},
	}
	out := pruning.PruneAveraged(avg, pruning.DefaultThreshold)
	require.NotContains(t, out, "f2")
	require.Contains(t, out, "f1")
	require.NotContains(t, out["f1"], "NOUN")
	require.InDelta(t, 2.5, out["f1"]["VERB"], 1e-9)
}

func TestPruneHashedRoundsThenDrops(t *testing.T) {
	model := hashing.Model{
		0: {"LEFT-det": 1.004, "RIGHT-nsubj": 0.994},
	}
	out := pruning.PruneHashed(model, 1.0)
	require.InDelta(t, 1.0, out[0]["LEFT-det"], 1e-9)
	require.NotContains(t, out[0], "RIGHT-nsubj")
}
