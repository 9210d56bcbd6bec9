// Package perceptron implements the sparse, lazily-averaged multiclass
// perceptron shared by the POS tagger (postag) and the parser's
// transition classifier (depparse).
//
// Weights are stored in a flat table keyed by (feature, class) rather than
// the conceptually nested feature->class->weight mapping, matching the
// open-addressed layout a systems implementation would use for the hot
// training-path lookups; AverageWeights nests the result back into
// feature->class->weight for JSON export and evaluation.
package perceptron
