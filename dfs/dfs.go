// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search (single-source and forest) on a
// topology.Matrix, with cancellation, pre- and post-order hooks, depth and
// neighbor limits, full-topology traversal, and diagnostics.
//
// The walker is iterative (explicit stack), so traversal depth is bounded by
// memory rather than the goroutine stack. Neighbors are explored in ascending
// index order.
//
// Complexity:
//
//   - Time:   O(N²) on an N-node matrix (each row is scanned once).
//   - Memory: O(N) for the stack and per-node metadata.
//
// Errors:
//
//   - ErrGraphNil               if m is nil.
//   - ErrStartVertexNotFound    if start is out of range.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/linkfail/topology"
)

// frame is one stack entry: a node and the next column to scan in its row.
type frame struct {
	node  int
	next  int
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	m     *topology.Matrix
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on m. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from start.
// Returns DFSResult or error if aborted by context or hook.
func DFS(m *topology.Matrix, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input topology
	if m == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	n := m.Len()
	if !dopts.FullTraversal && !m.InRange(start) {
		return nil, fmt.Errorf("dfs: DFS(%d): %w", start, ErrStartVertexNotFound)
	}

	// 4. Initialize result
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := range res.Parent {
		res.Parent[i] = -1
	}

	w := &dfsWalker{m: m, opts: dopts, res: res, stack: make([]frame, 0, n)}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.Visited[v] {
				if err := w.traverse(v); err != nil {
					return res, err
				}
			}
		}
	} else if err := w.traverse(start); err != nil {
		return res, err
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// traverse runs one DFS tree rooted at root.
func (w *dfsWalker) traverse(root int) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}
	n := w.m.Len()

	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			w.res.Order = nil
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]

		// 2. Advance to the next unvisited, admissible neighbor.
		descended := false
		for top.next < n {
			nid := top.next
			top.next++
			if nid == top.node || !w.m.HasEdge(top.node, nid) || w.res.Visited[nid] {
				continue
			}
			if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.opts.SkippedNeighbors++
				continue
			}
			w.res.Parent[nid] = top.node
			if err := w.discover(nid, top.depth+1); err != nil {
				return err
			}
			descended = true
			break
		}
		if descended {
			continue
		}

		// 3. Row exhausted: post-order hook and finish.
		id := top.node
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				w.res.Order = nil
				return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
			}
		}
		w.res.Order = append(w.res.Order, id)
	}

	return nil
}

// discover marks id visited, runs the pre-order hook and pushes its frame.
func (w *dfsWalker) discover(id, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}
	w.stack = append(w.stack, frame{node: id, depth: depth})

	return nil
}
