// Package posfeat implements the closed, fixed-spelling POS feature
// template. Every emitted key's exact string form is a contract shared
// with a separate runtime tagger; only the spelling is normative, the
// emission order is not.
package posfeat
