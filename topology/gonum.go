// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: two-way adapters between Matrix and gonum/graph.
// Policy:
//   - Node IDs map to matrix indices one-to-one (0..N-1).
//   - Weights travel as float64 and must be positive integers on import.

package topology

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum exports m as a gonum weighted undirected graph. Every index
// becomes a node, even when isolated.
//
// Complexity: O(N²).
func ToGonum(m *Matrix) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	n := m.Len()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for _, e := range m.Edges() {
		g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(e.From),
			T: simple.Node(e.To),
			W: float64(e.Weight),
		})
	}

	return g
}

// FromGonum imports a weighted undirected gonum graph whose node IDs are
// exactly 0..N-1.
//
// Errors:
//   - ErrInvalidParameters if IDs are not dense or a weight is not a
//     positive integer.
func FromGonum(g graph.WeightedUndirected) (*Matrix, error) {
	nodes := graph.NodesOf(g.Nodes())
	n := len(nodes)
	for _, u := range nodes {
		if u.ID() < 0 || u.ID() >= int64(n) {
			return nil, fmt.Errorf("FromGonum: node id %d outside [0,%d): %w", u.ID(), n, ErrInvalidParameters)
		}
	}

	m, err := New(n)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	// Each undirected edge is visited once, from its lower endpoint.
	for _, u := range nodes {
		to := g.From(u.ID())
		for to.Next() {
			v := to.Node()
			if v.ID() <= u.ID() {
				continue
			}
			w, ok := g.Weight(u.ID(), v.ID())
			if !ok || w < 1 || w != math.Trunc(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("FromGonum: edge %d-%d weight %v: %w",
					u.ID(), v.ID(), w, ErrInvalidParameters)
			}
			if err = m.SetEdge(int(u.ID()), int(v.ID()), int64(w)); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return m, nil
}
