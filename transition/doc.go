// Package transition implements the arc-eager transition system: a
// Config (stack, buffer, partial arcs) and the four transitions SHIFT,
// REDUCE, LEFT-ARC(l), and RIGHT-ARC(l).
//
// Every Transition mutates a Config in place. A Set enumerates the legal
// transitions for a system with a fixed label set L; its iteration order
// (sorted by label) is the deterministic tie-break used by the perceptron
// and by the dynamic oracle.
package transition
