// Package hashing implements the feature-hashing step of the
// post-processing pipeline: FNV-1a-32 over a feature key's UTF-16 code
// units, bucket assignment by modulus, and collision-additive folding of
// an averaged-weight model into a fixed number of buckets.
//
// The hash must reproduce bit-identically in the downstream runtime, so
// it is hand-rolled here rather than built on the standard library's
// hash/fnv, which hashes bytes and cannot express a UTF-16 code-unit scan.
package hashing
