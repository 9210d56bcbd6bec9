// Package algorithms implements graph algorithms on core.Graph. See bfs.go
// for the traversal used by evalmetrics's tree-connectivity
// diagnostic.
package algorithms
