// Package core provides a minimal, thread-safe directed graph used by
// evalmetrics and algorithms to diagnose a predicted dependency tree: is
// every token reachable from ROOT, and does the arc set form a tree rather
// than a forest or a graph with extra edges.
//
// The Graph G = (V,E) is always directed, unweighted, and single-edge:
// a dependency arc is a single edge from head to dependent, so there is no
// weight, no multigraph, and no undirected mode to configure.
//
// Core methods:
//
//	AddVertex(id string) error               // O(1), idempotent
//	HasVertex(id string) bool                // O(1)
//	VertexCount() int                        // O(1)
//	AddEdge(from, to string) error           // O(deg(from))
//	NeighborIDs(id string) ([]string, error) // O(deg(id)), sorted, unique
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
package core
