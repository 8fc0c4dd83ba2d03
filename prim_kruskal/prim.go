// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a root over a dense topology.Matrix with a key array,
// which is the natural O(N²) form for adjacency matrices.
package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linkfail/topology"
)

// Prim computes the minimum spanning tree of the component containing root.
//
// Selection rule: each step adds the crossing edge (u in tree, v outside)
// with the lowest weight; ties go to the lowest u, then the lowest v. This
// matches a row-major scan of the tree rows.
//
// Truncation: when no crossing edge remains before N-1 edges are chosen, the
// tree of root's component is returned with no error. len(edges)+1 is the
// number of nodes reachable from root.
//
// Error Conditions:
//   - ErrInvalidGraph : if m is nil.
//   - ErrRootNotFound : if root is outside [0, N).
//
// Steps:
//  1. Validate topology and root.
//  2. key[v] = best crossing weight, via[v] = its tree endpoint.
//  3. Repeat: pick the outside node with minimal (key, via, v); stop if none.
//  4. Add it, then relax keys through its row.
//
// Complexity: O(N²) time, O(N) memory.
func Prim(m *topology.Matrix, root int) ([]topology.Edge, int64, error) {
	// 1. Validate.
	if m == nil {
		return nil, 0, ErrInvalidGraph
	}
	if !m.InRange(root) {
		return nil, 0, fmt.Errorf("prim_kruskal: Prim(root=%d): %w", root, ErrRootNotFound)
	}

	n := m.Len()
	edges := make([]topology.Edge, 0, n-1)
	if n == 1 {
		return edges, 0, nil
	}

	// 2. Initialize key array.
	const inf = int64(math.MaxInt64)
	inTree := make([]bool, n)
	key := make([]int64, n)
	via := make([]int, n)
	for i := range key {
		key[i] = inf
		via[i] = -1
	}
	inTree[root] = true
	relax(m, root, inTree, key, via)

	var total int64
	for len(edges) < n-1 {
		// 3. Select the next node.
		best := -1
		for v := 0; v < n; v++ {
			if inTree[v] || key[v] == inf {
				continue
			}
			if best < 0 || key[v] < key[best] || (key[v] == key[best] && via[v] < via[best]) {
				best = v
			}
		}
		if best < 0 {
			break // root's component is exhausted
		}

		// 4. Commit and relax.
		inTree[best] = true
		edges = append(edges, topology.Edge{From: via[best], To: best, Weight: key[best]})
		total += key[best]
		relax(m, best, inTree, key, via)
	}

	return edges, total, nil
}

// MST runs Prim rooted at node 0.
func MST(m *topology.Matrix) ([]topology.Edge, int64, error) {
	return Prim(m, 0)
}

// relax lowers keys of outside nodes through u. An equal weight moves the
// endpoint only to a lower tree index.
func relax(m *topology.Matrix, u int, inTree []bool, key []int64, via []int) {
	n := m.Len()
	for v := 0; v < n; v++ {
		if inTree[v] || !m.HasEdge(u, v) {
			continue
		}
		w := m.Weight(u, v)
		if w < key[v] || (w == key[v] && u < via[v]) {
			key[v] = w
			via[v] = u
		}
	}
}
