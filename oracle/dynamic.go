package oracle

import (
	"math"

	"github.com/katalvlaran/udtrain/transition"
)

// Infinite marks a transition that can never reach the gold tree from the
// current configuration (e.g. RIGHT-l with an empty buffer).
const Infinite = math.MaxInt32

// DynamicCost computes the Goldberg & Nivre (2012) arc-eager cost of
// applying t to cfg given the gold (heads, labels): the number of gold
// arcs that become permanently unreachable. A cost of 0 means t is
// optimal; see spec §4.3 for the closed-form per-transition rules.
func DynamicCost(t transition.Transition, cfg *transition.Config, goldHeads []int, goldLabels []string) int {
	s0 := cfg.S0()
	b0 := cfg.B0()

	switch tr := t.(type) {
	case transition.Shift:
		cost := 0
		if s0 > 0 && b0 >= 0 && goldHeads[s0] == b0 {
			cost++
		}
		for _, j := range cfg.Buffer {
			if goldHeads[j] == s0 && !cfg.HasHead(j) {
				cost++
			}
		}
		return cost

	case transition.Reduce:
		cost := 0
		for _, j := range cfg.Buffer {
			if goldHeads[j] == s0 {
				cost++
			}
		}
		return cost

	case transition.LeftArc:
		if s0 <= 0 {
			return Infinite
		}
		if b0 >= 0 && goldHeads[s0] == b0 {
			if goldLabels[s0] == tr.Label {
				return 0
			}
			return 1
		}
		return 1

	case transition.RightArc:
		if b0 < 0 {
			return Infinite
		}
		if goldHeads[b0] == s0 {
			if goldLabels[b0] == tr.Label {
				return 0
			}
			return 1
		}
		return 1

	default:
		return Infinite
	}
}

// MinCost scans set's transitions valid at cfg, in canonical iteration
// order, and returns the first one attaining the minimum dynamic cost —
// the deterministic tie-break required by spec §4.3.
func MinCost(set transition.Set, cfg *transition.Config, goldHeads []int, goldLabels []string) (transition.Transition, bool) {
	var best transition.Transition
	bestCost := Infinite + 1
	for _, t := range set.Valid(cfg) {
		c := DynamicCost(t, cfg, goldHeads, goldLabels)
		if c < bestCost {
			bestCost = c
			best = t
		}
	}
	return best, best != nil
}
