package pruning

import (
	"math"

	"github.com/katalvlaran/udtrain/hashing"
	"github.com/katalvlaran/udtrain/perceptron"
)

// DefaultThreshold is the prune-by-absolute-weight default (spec §4.6).
const DefaultThreshold = 1.0

// Round2 rounds v to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PruneAveraged drops any (feature, class) cell with |weight| < threshold
// from an unhashed averaged model, without rounding — the POS tagger's
// first export keeps full precision (spec §4.8). Features left with no
// surviving classes are omitted entirely.
func PruneAveraged(avg perceptron.Averaged, threshold float64) perceptron.Averaged {
	out := make(perceptron.Averaged)
	for feature, classes := range avg {
		kept := make(map[string]float64)
		for class, w := range classes {
			if math.Abs(w) < threshold {
				continue
			}
			kept[class] = w
		}
		if len(kept) > 0 {
			out[feature] = kept
		}
	}
	return out
}

// PruneHashed rounds every weight in a hashed model to 2 decimal places,
// then drops any cell with |weight| < threshold (spec §4.8, parser
// variant). Buckets left with no surviving classes are omitted.
func PruneHashed(model hashing.Model, threshold float64) hashing.Model {
	out := make(hashing.Model)
	for bucket, classes := range model {
		kept := make(map[string]float64)
		for class, w := range classes {
			r := Round2(w)
			if math.Abs(r) < threshold {
				continue
			}
			kept[class] = r
		}
		if len(kept) > 0 {
			out[bucket] = kept
		}
	}
	return out
}
