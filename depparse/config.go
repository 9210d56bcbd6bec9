package depparse

import (
	"github.com/katalvlaran/udtrain/calibrate"
	"github.com/katalvlaran/udtrain/pruning"
)

// defaultBuckets is the hashed model's bucket count: a power of two, per
// the hashing contract (spec §3).
const defaultBuckets = 1 << 18

// Config holds the tunables of Train. Use Option functions to override
// individual fields on top of DefaultConfig.
type Config struct {
	Seed            int64
	Epochs          int
	ExploreRate     float64
	PruneThreshold  float64
	Buckets         uint32
	CalibrationBins int
}

// DefaultConfig returns the documented defaults: 10 epochs, explore rate
//0.1, prune threshold 1.0, 2^18 hash buckets, 5 calibration bins (§4.7,
// §4.8).
func DefaultConfig() Config {
	return Config{
		Seed:            1,
		Epochs:          10,
		ExploreRate:     0.1,
		PruneThreshold:  pruning.DefaultThreshold,
		Buckets:         defaultBuckets,
		CalibrationBins: calibrate.MinBins,
	}
}

// Option mutates a Config, in the builder/options.go functional-option idiom.
type Option func(*Config)

// WithSeed sets the RNG seed driving per-epoch sentence shuffling and the
// explore-rate coin flip.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithEpochs sets the number of training epochs.
func WithEpochs(epochs int) Option {
	return func(c *Config) { c.Epochs = epochs }
}

// WithExploreRate sets the fraction of training steps where training follows
// the model's own prediction instead of the oracle's, when that prediction
// is a legal transition in the current configuration (§4.7).
func WithExploreRate(rate float64) Option {
	return func(c *Config) { c.ExploreRate = rate }
}

// WithPruneThreshold sets the absolute-weight pruning threshold applied
// to the hashed model after averaging.
func WithPruneThreshold(threshold float64) Option {
	return func(c *Config) { c.PruneThreshold = threshold }
}

// WithBuckets sets the hashed model's bucket count. Callers are
// responsible for passing a power of two; Train does not validate it.
func WithBuckets(buckets uint32) Option {
	return func(c *Config) { c.Buckets = buckets }
}

// WithCalibrationBins sets the number of isotonic-regression bins (raised
// to calibrate.MinBins if lower).
func WithCalibrationBins(bins int) Option {
	return func(c *Config) { c.CalibrationBins = bins }
}
