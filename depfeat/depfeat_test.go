package depfeat

import (
	"testing"

	"github.com/katalvlaran/udtrain/transition"
)

func TestExtractIncludesBiasAndInitialConfigSentinels(t *testing.T) {
	cfg := transition.NewConfig(3)
	ctx := Context{
		Cfg:   cfg,
		Words: []string{"", "The", "cat", "sat"},
		Tags:  []string{"", "DT", "NN", "VBD"},
	}
	feats := Extract(ctx)

	want := map[string]bool{
		"bias":           true,
		"s0.word=ROOT":   true,
		"s1.word=_NULL_": true,
		"b0.word=The":    true,
		"b1.word=cat":    true,
		"b2.word=sat":    true,
	}
	got := make(map[string]bool, len(feats))
	for _, f := range feats {
		got[f] = true
	}
	for k := range want {
		if !got[k] {
			t.Errorf("Extract missing feature %q", k)
		}
	}
}

func TestExtractDistClampedAtMax(t *testing.T) {
	cfg := transition.NewConfig(20)
	// shift token 1, then attach and reduce tokens 2..14 so that s0=1
	// while b0=15: |s0-b0| = 14, which clamps to 10
	_ = transition.MustApply(transition.Shift{}, cfg)
	for i := 0; i < 13; i++ {
		_ = transition.MustApply(transition.RightArc{Label: "dep"}, cfg)
		_ = transition.MustApply(transition.Reduce{}, cfg)
	}
	words := make([]string, 21)
	tags := make([]string, 21)
	for i := range words {
		words[i] = "w"
		tags[i] = "NN"
	}
	ctx := Context{Cfg: cfg, Words: words, Tags: tags}
	feats := Extract(ctx)

	found := false
	for _, f := range feats {
		if f == "dist=10" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected dist clamped to 10, got features: %v", feats)
	}
}

func TestExtractFlagsOnlyWhenTrue(t *testing.T) {
	cfg := transition.NewConfig(2)
	ctx := Context{
		Cfg:   cfg,
		Words: []string{"", "a", "b"},
		Tags:  []string{"", "NN", "NN"},
	}
	feats := Extract(ctx)
	for _, f := range feats {
		if f == "s0_has_head" {
			t.Errorf("s0 is ROOT with no head; s0_has_head must not be emitted")
		}
	}
}
