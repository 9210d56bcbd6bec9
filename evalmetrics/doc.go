// Package evalmetrics computes POS accuracy, UAS/LAS, and dependency-tree
// diagnostics (non-projectivity and ROOT-reachability) over gold and
// predicted structures. Every function here is pure (§4.9).
package evalmetrics
