package hashing

import (
	"unicode/utf16"

	"github.com/katalvlaran/udtrain/perceptron"
)

const (
	offsetBasis32 = 0x811c9dc5
	prime32       = 0x01000193
)

// FNV1a32 hashes key by scanning its UTF-16 code units (surrogate pairs
// for non-BMP runes included), matching the scan a UTF-16-native runtime
// performs over the same string. hash/fnv hashes bytes and cannot express
// this, so the loop is hand-rolled.
func FNV1a32(key string) uint32 {
	h := uint32(offsetBasis32)
	for _, unit := range utf16.Encode([]rune(key)) {
		h ^= uint32(unit)
		h *= prime32
	}
	return h
}

// IsPowerOfTwo reports whether n is a positive power of two, the required
// shape of a bucket count (spec §3: "B is a power-of-two configurable
// constant").
func IsPowerOfTwo(n uint32) bool {
	return n > 0 && n&(n-1) == 0
}

// Model maps bucket_id -> class -> weight, the hashed form of an averaged
// perceptron model.
type Model map[uint32]map[string]float64

// Hash folds avg into numBuckets buckets via bucket_id = FNV1a32(feature)
// mod numBuckets, summing weights whose source feature keys collide
// (spec §3, §8: collision-additive semantics is part of the contract).
func Hash(avg perceptron.Averaged, numBuckets uint32) Model {
	out := make(Model)
	for feature, classes := range avg {
		bucket := FNV1a32(feature) % numBuckets
		row, ok := out[bucket]
		if !ok {
			row = make(map[string]float64)
			out[bucket] = row
		}
		for class, w := range classes {
			row[class] += w
		}
	}
	return out
}
