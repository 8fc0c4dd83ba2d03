// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// weighted topology.Matrix.
//
// Weights are link capacities and never negative, so Dijkstra's
// correctness holds without a pre-scan.
//
// Decrease-key is lazy with explicit tombstones: every node has at most one
// live heap entry; re-inserting a node marks its previous entry dead, and a
// pop discards dead entries. Ties in distance break by lower node index.
//
// Complexity:
//
//   - Time:  O(N² + E log E) on an N-node matrix (row scans dominate).
//   - Space: O(N + E) for distances, predecessors and heap entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/linkfail/topology"
)

// Dijkstra computes shortest distances from source to every node.
//
// Returns:
//
//   - dist: distance per node (Unreachable if not reachable within the limits).
//   - prev: predecessor per node on a shortest path (-1 for source and unreachable).
//   - err:  ErrNilGraph or ErrVertexNotFound.
func Dijkstra(m *topology.Matrix, source int, opts ...Option) ([]int64, []int, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if m == nil {
		return nil, nil, ErrNilGraph
	}
	if !m.InRange(source) {
		return nil, nil, fmt.Errorf("dijkstra: source %d: %w", source, ErrVertexNotFound)
	}

	// 3) Run.
	r := newRunner(m, cfg)
	r.init(source)
	r.process()

	return r.dist, r.prev, nil
}

// Distances is Dijkstra without predecessors.
func Distances(m *topology.Matrix, source int, opts ...Option) ([]int64, error) {
	dist, _, err := Dijkstra(m, source, opts...)
	return dist, err
}

// ShortestPath returns the minimum-weight path from source to dest.
//
//   - source == dest: Path{Nodes: [source], Weight: 0}.
//   - dest unreachable: the zero Path (no nodes, weight 0) and a nil error.
//
// The search stops as soon as dest is finalized.
func ShortestPath(m *topology.Matrix, source, dest int, opts ...Option) (Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if m == nil {
		return Path{}, ErrNilGraph
	}
	if !m.InRange(source) {
		return Path{}, fmt.Errorf("dijkstra: source %d: %w", source, ErrVertexNotFound)
	}
	if !m.InRange(dest) {
		return Path{}, fmt.Errorf("dijkstra: dest %d: %w", dest, ErrVertexNotFound)
	}
	if source == dest {
		return Path{Nodes: []int{source}}, nil
	}

	r := newRunner(m, cfg)
	r.target = dest
	r.init(source)
	r.process()

	if r.dist[dest] == Unreachable {
		return Path{}, nil
	}

	// Walk predecessors back to source, then reverse.
	nodes := make([]int, 0)
	for v := dest; v != -1; v = r.prev[v] {
		nodes = append(nodes, v)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return Path{Nodes: nodes, Weight: r.dist[dest]}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       *topology.Matrix
	options Options
	dist    []int64
	prev    []int
	visited []bool
	live    []*nodeItem // current heap entry per node, nil if none
	pq      nodePQ
	target  int // stop once finalized; -1 for all nodes
}

func newRunner(m *topology.Matrix, cfg Options) *runner {
	n := m.Len()
	return &runner{
		m:       m,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		live:    make([]*nodeItem, n),
		pq:      make(nodePQ, 0, n),
		target:  -1,
	}
}

// init sets dist=+∞, prev=-1 everywhere and pushes the source at distance 0.
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = Unreachable
		r.prev[v] = -1
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)
}

// process repeatedly extracts the closest live node and relaxes its row.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop; tombstoned entries are discarded.
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.dead {
			continue
		}
		u := item.id
		r.live[u] = nil

		// 2) Finalize. Relaxation never admits distances past MaxDistance,
		//    so every popped entry is within the cap.
		r.visited[u] = true
		if u == r.target {
			return
		}
		r.relax(u)
	}
}

// relax scans row u and improves tentative distances of unvisited neighbors.
func (r *runner) relax(u int) {
	n := r.m.Len()
	for v := 0; v < n; v++ {
		if r.visited[v] || !r.m.HasEdge(u, v) {
			continue
		}
		w := r.m.Weight(u, v)
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}
}

// push inserts a fresh entry for v and tombstones the previous one.
func (r *runner) push(v int, d int64) {
	if old := r.live[v]; old != nil {
		old.dead = true
	}
	it := &nodeItem{id: v, dist: d}
	r.live[v] = it
	heap.Push(&r.pq, it)
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist int64
	dead bool // superseded by a later entry for the same node
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority, then lower id.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
