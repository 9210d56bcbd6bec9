// Package depfeat extracts the parser feature template from an arc-eager
// configuration: single-position features over stack/buffer positions,
// tag/word/valency conjunctions, and distance and shape features. See
// Extract.
package depfeat
