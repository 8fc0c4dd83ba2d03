// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// Over a topology.Matrix it yields the minimum spanning forest: one tree per component.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/linkfail/topology"
)

// Kruskal computes the minimum spanning forest of m.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : if m is nil.
//
// Steps:
//  1. Collect edges in row-major (i<j) order via m.Edges().
//  2. Stable-sort by ascending weight, so equal weights keep row-major order.
//  3. Union-find over node indices; take every edge joining two sets.
//  4. Stop early once N-1 edges are taken.
//
// A disconnected topology yields fewer than N-1 edges and no error; the
// forest has Components(m) trees.
//
// Complexity: O(N² + E log E) time, O(N + E) memory.
func Kruskal(m *topology.Matrix) ([]topology.Edge, int64, error) {
	if m == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := m.Len()

	// 1–2. Sorted edge list.
	edges := m.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Disjoint sets.
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		return true
	}

	forest := make([]topology.Edge, 0, n)
	var total int64
	for _, e := range edges {
		if len(forest) == n-1 {
			break
		}
		if union(e.From, e.To) {
			forest = append(forest, e)
			total += e.Weight
		}
	}

	return forest, total, nil
}
