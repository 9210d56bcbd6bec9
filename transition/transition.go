package transition

import (
	"errors"
	"sort"
)

// ErrNotApplicable is returned when Apply is called on a transition that
// IsPossible reports false for; it signals a bug in the caller (spec §7:
// "invalid transition proposal at training time ... cannot happen because
// prediction is restricted to valid; if violated, treat as a bug and abort").
var ErrNotApplicable = errors.New("transition: not applicable to configuration")

// Transition is one of SHIFT, REDUCE, LEFT-ARC(l), RIGHT-ARC(l).
type Transition interface {
	// Name is the canonical string form: "SHIFT", "REDUCE", "LEFT-<l>", "RIGHT-<l>".
	Name() string
	// IsPossible reports whether this transition may legally be applied to cfg.
	IsPossible(cfg *Config) bool
	// Apply mutates cfg. Callers must check IsPossible first.
	Apply(cfg *Config)
}

// MustApply applies t to cfg, returning ErrNotApplicable if t is illegal.
func MustApply(t Transition, cfg *Config) error {
	if !t.IsPossible(cfg) {
		return ErrNotApplicable
	}
	t.Apply(cfg)
	return nil
}

// Shift moves the front of the buffer onto the stack.
type Shift struct{}

func (Shift) Name() string { return "SHIFT" }

func (Shift) IsPossible(cfg *Config) bool { return len(cfg.Buffer) > 0 }

func (Shift) Apply(cfg *Config) {
	b0 := cfg.Buffer[0]
	cfg.Buffer = cfg.Buffer[1:]
	cfg.Stack = append(cfg.Stack, b0)
}

// Reduce pops the stack top, which must already have a head.
type Reduce struct{}

func (Reduce) Name() string { return "REDUCE" }

func (Reduce) IsPossible(cfg *Config) bool {
	s0 := cfg.S0()
	return s0 > 0 && cfg.HasHead(s0)
}

func (Reduce) Apply(cfg *Config) {
	cfg.Stack = cfg.Stack[:len(cfg.Stack)-1]
}

// LeftArc assigns heads[s0]=b0, labels[s0]=Label, then pops s0.
type LeftArc struct {
	Label string
}

func (t LeftArc) Name() string { return "LEFT-" + t.Label }

func (t LeftArc) IsPossible(cfg *Config) bool {
	s0 := cfg.S0()
	return len(cfg.Buffer) > 0 && s0 > 0 && !cfg.HasHead(s0)
}

func (t LeftArc) Apply(cfg *Config) {
	s0 := cfg.S0()
	b0 := cfg.B0()
	cfg.attach(b0, s0, t.Label)
	cfg.Stack = cfg.Stack[:len(cfg.Stack)-1]
}

// RightArc assigns heads[b0]=s0, labels[b0]=Label, then moves b0 onto the stack.
type RightArc struct {
	Label string
}

func (t RightArc) Name() string { return "RIGHT-" + t.Label }

func (t RightArc) IsPossible(cfg *Config) bool {
	return len(cfg.Buffer) > 0 && len(cfg.Stack) > 0
}

func (t RightArc) Apply(cfg *Config) {
	s0 := cfg.S0()
	b0 := cfg.Buffer[0]
	cfg.attach(s0, b0, t.Label)
	cfg.Buffer = cfg.Buffer[1:]
	cfg.Stack = append(cfg.Stack, b0)
}

// Set is the fixed transition set T = {SHIFT, REDUCE} ∪ {LEFT-l : l != root}
// ∪ {RIGHT-l}, stored in the canonical sorted order used for deterministic
// argmax tie-breaking (spec §4.5) and dynamic-oracle tie-breaking (§4.3).
type Set struct {
	ordered []Transition
	byName  map[string]Transition
}

// NewSet builds the fixed transition set from a label set L. Labels need
// not be pre-sorted or de-duplicated; "root" is excluded from LEFT-ARC by
// construction (LEFT-root is never legal per spec §3).
func NewSet(labels []string) Set {
	seen := make(map[string]struct{}, len(labels))
	var all []Transition
	all = append(all, Shift{}, Reduce{})
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		if l != "root" {
			all = append(all, LeftArc{Label: l})
		}
		all = append(all, RightArc{Label: l})
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })

	byName := make(map[string]Transition, len(all))
	for _, t := range all {
		byName[t.Name()] = t
	}

	return Set{ordered: all, byName: byName}
}

// All returns the transitions in canonical sorted order.
func (s Set) All() []Transition { return s.ordered }

// Names returns the canonical sorted transition name strings.
func (s Set) Names() []string {
	names := make([]string, len(s.ordered))
	for i, t := range s.ordered {
		names[i] = t.Name()
	}
	return names
}

// ByName looks up a transition by its canonical Name(), returning
// (nil, false) if it is not a member of the set.
func (s Set) ByName(name string) (Transition, bool) {
	t, ok := s.byName[name]
	return t, ok
}

// Valid returns the subset of s.All() that IsPossible(cfg) reports true
// for, preserving canonical sorted order.
func (s Set) Valid(cfg *Config) []Transition {
	var valid []Transition
	for _, t := range s.ordered {
		if t.IsPossible(cfg) {
			valid = append(valid, t)
		}
	}
	return valid
}
