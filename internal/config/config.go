package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the training parameters common to both the POS and parser
// drivers (§4.6, §4.7, §4.8).
type Config struct {
	Seed           int64   `yaml:"seed"`
	Epochs         int     `yaml:"epochs"`
	ExploreRate    float64 `yaml:"explore_rate"`
	PruneThreshold float64 `yaml:"prune_threshold"`
	Buckets        uint32  `yaml:"buckets"`
	CalibrationBins int    `yaml:"calibration_bins"`
}

// DefaultConfig returns the documented defaults: explore_rate 0.1 (§4.7),
// prune_threshold 1.0 (§4.6), buckets 2^18 (§3, parser default), 10
// epochs, calibration_bins 5 (§4.8 MinBins).
func DefaultConfig() Config {
	return Config{
		Seed:            1,
		Epochs:          10,
		ExploreRate:     0.1,
		PruneThreshold:  1.0,
		Buckets:         1 << 18,
		CalibrationBins: 5,
	}
}

// Load reads path as YAML and overlays it onto DefaultConfig. A missing
// file is not an error: the defaults are returned unchanged, matching
// the teacher's "config file absent -> use defaults" convention.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
