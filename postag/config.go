package postag

import "github.com/katalvlaran/udtrain/pruning"

// Config holds the tunables of Train. Use Option functions to override
// individual fields on top of DefaultConfig.
type Config struct {
	Seed           int64
	Epochs         int
	PruneThreshold float64
}

// DefaultConfig returns the documented defaults: 10 epochs, prune
// threshold 1.0 (§4.6).
func DefaultConfig() Config {
	return Config{
		Seed:           1,
		Epochs:         10,
		PruneThreshold: pruning.DefaultThreshold,
	}
}

// Option mutates a Config, in the builder/options.go functional-option
// idiom (WithSeed creates a reproducible RNG seed, not an *rand.Rand).
type Option func(*Config)

// WithSeed sets the RNG seed used to shuffle training sentences each epoch.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithEpochs sets the number of training epochs.
func WithEpochs(epochs int) Option {
	return func(c *Config) { c.Epochs = epochs }
}

// WithPruneThreshold sets the absolute-weight pruning threshold applied
// after averaging.
func WithPruneThreshold(threshold float64) Option {
	return func(c *Config) { c.PruneThreshold = threshold }
}
