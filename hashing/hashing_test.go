package hashing_test

import (
	"testing"

	"github.com/katalvlaran/udtrain/hashing"
	"github.com/katalvlaran/udtrain/perceptron"
	"github.com/stretchr/testify/require"
)

// TestFNV1a32KnownVectors checks "a" against the widely published FNV-1a-32
// test vector, then "bias" against the same algorithm applied by hand,
// confirming FNV1a32 implements the documented offset/prime/xor-then-
// multiply recurrence bit for bit.
func TestFNV1a32KnownVectors(t *testing.T) {
	require.Equal(t, uint32(0x811c9dc5), hashing.FNV1a32(""))
	require.Equal(t, uint32(0xe40c292c), hashing.FNV1a32("a"))
	require.Equal(t, uint32(0xba467ec4), hashing.FNV1a32("bias"))
}

func TestFNV1a32Deterministic(t *testing.T) {
	require.Equal(t, hashing.FNV1a32("word=dog"), hashing.FNV1a32("word=dog"))
}

func TestIsPowerOfTwo(t *testing.T) {
	require.True(t, hashing.IsPowerOfTwo(1))
	require.True(t, hashing.IsPowerOfTwo(262144)) // 2^18
	require.False(t, hashing.IsPowerOfTwo(0))
	require.False(t, hashing.IsPowerOfTwo(3))
}

func TestHashSumsCollisions(t *testing.T) {
	// Pick numBuckets=1 so every feature collides into bucket 0.
	avg := perceptron.Averaged{
		"f1": {"NOUN": 1.5},
		"f2": {"NOUN": 2.5, "VERB": -1.0},
	}
	model := hashing.Hash(avg, 1)
	require.Len(t, model, 1)
	require.InDelta(t, 4.0, model[0]["NOUN"], 1e-9)
	require.InDelta(t, -1.0, model[0]["VERB"], 1e-9)
}

func TestHashBucketAssignment(t *testing.T) {
	avg := perceptron.Averaged{"bias": {"NOUN": 1.0}}
	model := hashing.Hash(avg, 262144)
	want := hashing.FNV1a32("bias") % 262144
	require.Contains(t, model, want)
	require.InDelta(t, 1.0, model[want]["NOUN"], 1e-9)
}
