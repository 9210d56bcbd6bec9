// Package oracle supplies gold-transition guidance for training the
// arc-eager parser (depparse): a static oracle for projective
// gold trees, and a dynamic oracle (Goldberg & Nivre 2012) that assigns a
// cost to any transition from any reachable configuration, used when the
// static oracle has no answer or the configuration has drifted from the
// gold path (e.g. under exploration).
package oracle
