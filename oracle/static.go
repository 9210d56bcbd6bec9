package oracle

import "github.com/katalvlaran/udtrain/transition"

// Static returns the canonical next gold transition for a projective tree
// (goldHeads, goldLabels), following the fixed priority order:
//
//  1. LEFT-<l> if gold_heads[s0] == b0.
//  2. RIGHT-<l> if gold_heads[b0] == s0.
//  3. REDUCE if heads[s0] is set and no buffer token's gold head is s0.
//  4. SHIFT if the buffer is non-empty.
//  5. REDUCE as a last resort if heads[s0] is set.
//  6. (nil, false) on non-projective input: the caller must fall back to
//     the dynamic oracle's minimum-cost transition.
func Static(cfg *transition.Config, goldHeads []int, goldLabels []string) (transition.Transition, bool) {
	s0 := cfg.S0()
	b0 := cfg.B0()

	if s0 > 0 && b0 >= 0 && goldHeads[s0] == b0 {
		return transition.LeftArc{Label: goldLabels[s0]}, true
	}
	if s0 >= 0 && b0 > 0 && goldHeads[b0] == s0 {
		return transition.RightArc{Label: goldLabels[b0]}, true
	}
	if s0 > 0 && cfg.HasHead(s0) && !hasPendingChild(cfg, s0, goldHeads) {
		return transition.Reduce{}, true
	}
	if len(cfg.Buffer) > 0 {
		return transition.Shift{}, true
	}
	if s0 > 0 && cfg.HasHead(s0) {
		return transition.Reduce{}, true
	}
	return nil, false
}

// hasPendingChild reports whether some token still in the buffer has s0 as
// its gold head, i.e. s0 cannot yet be reduced without losing that arc.
func hasPendingChild(cfg *transition.Config, s0 int, goldHeads []int) bool {
	for _, j := range cfg.Buffer {
		if goldHeads[j] == s0 {
			return true
		}
	}
	return false
}
