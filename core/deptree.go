package core

import "strconv"

// RootID is the vertex ID evalmetrics uses for the synthetic ROOT node
// (token index 0 in a CoNLL-U sentence).
const RootID = "0"

// BuildDependencyGraph builds a directed core.Graph with one vertex per
// token 0..n (0 is ROOT) and one edge head->dependent for every non-ROOT
// token i whose predicted head is heads[i]. heads is 1-indexed like
// transition.Config.Heads; heads[0] is ignored.
//
// Complexity: O(n).
func BuildDependencyGraph(n int, heads []int) (*Graph, error) {
	g := NewGraph()

	if err := g.AddVertex(RootID); err != nil {
		return nil, err
	}
	for i := 1; i <= n; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}
	for i := 1; i <= n; i++ {
		head := heads[i]
		if head < 0 || head > n {
			continue // unassigned or out-of-range head: leave token disconnected
		}
		if err := g.AddEdge(strconv.Itoa(head), strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}

	return g, nil
}
