// Package depparse trains an averaged-perceptron arc-eager dependency
// parser (§4.7): static-oracle replay with dynamic-oracle fallback on
// non-projective input, explore-rate-gated self-prediction, and the
// post-average hashing/pruning/calibration pipeline.
package depparse
