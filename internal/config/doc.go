// Package config loads the optional training.yaml that overrides the
// built-in defaults for epochs, seed, explore rate, bucket count, and
// prune threshold. Load overlays file values onto DefaultConfig; the
// udtrain CLI does not call Load.
package config
