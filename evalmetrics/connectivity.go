package evalmetrics

import (
	"github.com/katalvlaran/udtrain/algorithms"
	"github.com/katalvlaran/udtrain/core"
)

// IsSpanningTree reports whether the predicted head array heads (1-indexed,
// 1..n) forms a single tree rooted at ROOT: every token must be reachable
// from ROOT by following head->dependent edges, and the graph must have
// exactly n edges (one per non-ROOT token). This is a diagnostic over the
// parser's output, independent of the transition mechanics that produced
// it — a predicted tree can fail to span ROOT only if BuildDependencyGraph
// itself is fed a head array with forward references a real parse can't
// produce, which is exactly what this check is meant to catch.
func IsSpanningTree(n int, heads []int) (bool, error) {
	g, err := core.BuildDependencyGraph(n, heads)
	if err != nil {
		return false, err
	}

	res, err := algorithms.BFS(g, core.RootID, nil)
	if err != nil {
		return false, err
	}

	// +1 to count ROOT itself alongside the n real tokens.
	return len(res.Order) == n+1, nil
}
