// Package algorithms implements graph algorithms on core.Graph, used by
// evalmetrics to diagnose predicted dependency trees (ROOT
// reachability, connectivity) independently of the arc-eager parser state.
//
// # BFS — Breadth-First Search
//
// Breadth-First Search explores the graph level by level, starting from a
// given vertex. Used here to answer one question: which vertices are
// reachable from ROOT in a predicted head/dependent graph.
//
// Steps:
//  1. Initialize: mark start visited, depth=0, enqueue.
//  2. Loop until queue empty:
//     2.1 Dequeue an item (id, depth).
//     2.2 Visit: append to result.Order; invoke OnVisit if set.
//     2.3 Enqueue unvisited neighbors with parent and depth+1.
//  3. Check context cancellation before each dequeue.
//
// Time complexity: O(V + E)
// Memory usage:    O(V)
package algorithms

import (
	"context"
	"fmt"

	"github.com/katalvlaran/udtrain/core"
)

// ErrVertexNotFound is returned when the start vertex does not exist.
var ErrVertexNotFound = fmt.Errorf("algorithms: start vertex not found")

// BFSOptions configures traversal behavior.
type BFSOptions struct {
	// Ctx allows cancellation; if nil, context.Background() is used.
	Ctx context.Context

	// OnVisit(id, depth) is called when id is visited. If it returns an
	// error, traversal aborts (id is already in Order).
	OnVisit func(id string, depth int) error
}

// BFSResult holds the outcome of a BFS traversal.
type BFSResult struct {
	// Order is the sequence of visited vertex IDs.
	Order []string
	// Depth maps vertex ID -> distance (#edges) from start.
	Depth map[string]int
	// Parent maps vertex ID -> predecessor ID in the BFS tree.
	Parent map[string]string
	// Visited tracks which vertices have been reached.
	Visited map[string]bool
}

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// BFS performs a breadth-first search on g from startID using opts. It
// returns a BFSResult and any error encountered (e.g. ErrVertexNotFound,
// context.Canceled, or a user-supplied OnVisit error).
func BFS(g *core.Graph, startID string, opts *BFSOptions) (*BFSResult, error) {
	ctx := context.Background()
	if opts != nil && opts.Ctx != nil {
		ctx = opts.Ctx
	}

	res := &BFSResult{
		Order:   make([]string, 0),
		Depth:   make(map[string]int),
		Parent:  make(map[string]string),
		Visited: make(map[string]bool),
	}

	w := &walker{graph: g, opts: opts, res: res, ctx: ctx}

	if err := w.init(startID); err != nil {
		return res, err
	}
	if err := w.loop(); err != nil {
		return res, err
	}

	return res, nil
}

// walker holds the mutable state for one BFS execution.
type walker struct {
	graph *core.Graph
	opts  *BFSOptions
	res   *BFSResult
	ctx   context.Context
	queue []queueItem
}

func (w *walker) init(startID string) error {
	if !w.graph.HasVertex(startID) {
		return ErrVertexNotFound
	}
	w.res.Visited[startID] = true
	w.res.Depth[startID] = 0
	w.queue = append(w.queue, queueItem{id: startID, depth: 0})

	return nil
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if w.opts != nil && w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("OnVisit error at %q: %w", item.id, err)
		}
	}

	return nil
}

func (w *walker) enqueueNeighbors(item queueItem) error {
	ids, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if w.res.Visited[id] {
			continue
		}
		w.res.Visited[id] = true
		w.res.Parent[id] = item.id
		d := item.depth + 1
		w.res.Depth[id] = d
		w.queue = append(w.queue, queueItem{id: id, depth: d})
	}

	return nil
}
