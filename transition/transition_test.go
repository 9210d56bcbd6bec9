package transition_test

import (
	"testing"

	"github.com/katalvlaran/udtrain/transition"
	"github.com/stretchr/testify/require"
)

func TestInitialConfigTerminalAndValid(t *testing.T) {
	cfg := transition.NewConfig(3)
	require.False(t, cfg.Terminal())
	require.Equal(t, 0, cfg.S0())
	require.Equal(t, -1, cfg.S1())
	require.Equal(t, 1, cfg.B0())

	set := transition.NewSet([]string{"det", "nsubj", "root"})
	valid := set.Valid(cfg)
	// REDUCE and LEFT-* need a non-ROOT s0; RIGHT-* and SHIFT only need a
	// non-empty buffer: RIGHT-det, RIGHT-nsubj, RIGHT-root, SHIFT.
	require.Len(t, valid, 4)
	require.Equal(t, "SHIFT", valid[3].Name())
}

func TestLeftArcIllegalOnRoot(t *testing.T) {
	cfg := transition.NewConfig(2)
	la := transition.LeftArc{Label: "det"}
	require.False(t, la.IsPossible(cfg), "LEFT-ARC must be illegal with ROOT on top of stack")
}

func TestNoLeftRootTransition(t *testing.T) {
	set := transition.NewSet([]string{"root", "det"})
	_, ok := set.ByName("LEFT-root")
	require.False(t, ok, "LEFT-root must be excluded by construction")
	_, ok = set.ByName("RIGHT-root")
	require.True(t, ok)
}

func TestSetCanonicalOrder(t *testing.T) {
	set := transition.NewSet([]string{"nsubj", "det"})
	// LEFT-* < REDUCE < RIGHT-* < SHIFT lexicographically.
	require.Equal(t, []string{
		"LEFT-det", "LEFT-nsubj", "REDUCE", "RIGHT-det", "RIGHT-nsubj", "SHIFT",
	}, set.Names())
}

// TestArcEagerReplay walks the 5-token sentence from spec §8 through a
// hand-derived arc-eager transition sequence and checks the resulting Heads
// and Labels match the gold tree: heads=[2,0,2,5,3], labels=[det,root,nsubj,det,obl].
//
// Gold tree (head -> dependents):
//
//	0 (ROOT) -> 2 (root)
//	2 -> 1 (det, left), 3 (nsubj, right)
//	3 -> 5 (obl, right)
//	5 -> 4 (det, left)
func TestArcEagerReplay(t *testing.T) {
	goldHeads := []int{-1, 2, 0, 2, 5, 3}
	goldLabels := []string{"", "det", "root", "nsubj", "det", "obl"}

	cfg := transition.NewConfig(5)
	set := transition.NewSet([]string{"det", "root", "nsubj", "obl"})

	apply := func(name string) {
		tr, ok := set.ByName(name)
		require.True(t, ok, name)
		require.True(t, tr.IsPossible(cfg), "%s not possible: stack=%v buffer=%v", name, cfg.Stack, cfg.Buffer)
		tr.Apply(cfg)
	}

	apply("SHIFT")      // stack=[0,1] buffer=[2,3,4,5]
	apply("LEFT-det")   // 1<-2 det;  stack=[0]   buffer=[2,3,4,5]
	apply("RIGHT-root") // 2<-0 root; stack=[0,2] buffer=[3,4,5]
	apply("RIGHT-nsubj")// 3<-2 nsubj;stack=[0,2,3] buffer=[4,5]
	apply("SHIFT")      // stack=[0,2,3,4] buffer=[5]
	apply("LEFT-det")   // 4<-5 det;  stack=[0,2,3] buffer=[5]
	apply("RIGHT-obl")  // 5<-3 obl;  stack=[0,2,3,5] buffer=[]
	apply("REDUCE")     // stack=[0,2,3]
	apply("REDUCE")     // stack=[0,2]
	apply("REDUCE")     // stack=[0]

	require.True(t, cfg.Terminal())
	require.Equal(t, goldHeads, cfg.Heads)
	require.Equal(t, goldLabels, cfg.Labels)
}

func TestFinalizeAttachesOrphansToRoot(t *testing.T) {
	cfg := transition.NewConfig(2)
	set := transition.NewSet([]string{"dep"})
	tr, _ := set.ByName("SHIFT")
	tr.Apply(cfg) // stack=[0,1] buffer=[2]
	tr, _ = set.ByName("SHIFT")
	tr.Apply(cfg) // stack=[0,1,2] buffer=[]

	cfg.Finalize()

	require.True(t, cfg.Terminal())
	require.Equal(t, 0, cfg.Heads[1])
	require.Equal(t, "root", cfg.Labels[1])
	require.Equal(t, 0, cfg.Heads[2])
	require.Equal(t, "root", cfg.Labels[2])
}
