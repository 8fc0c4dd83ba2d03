// SPDX-License-Identifier: MIT

package flow

import (
	"github.com/katalvlaran/linkfail/topology"
)

// Residual holds residual capacities after a max-flow run.
//
// Every undirected link u–v of weight w is modeled as two opposed arcs of
// capacity w. Sending f along u→v lowers r[u][v] by f and raises r[v][u] by
// f, so r[u][v] + r[v][u] = 2w holds throughout.
type Residual struct {
	orig   *topology.Matrix
	source int
	sink   int
	r      [][]int64
}

// newResidual builds the initial residual network of m.
// Complexity: O(N²).
func newResidual(m *topology.Matrix, source, sink int) *Residual {
	n := m.Len()
	backing := make([]int64, n*n)
	r := make([][]int64, n)
	for i := 0; i < n; i++ {
		r[i] = backing[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			if m.HasEdge(i, j) {
				r[i][j] = m.Weight(i, j)
			}
		}
	}

	return &Residual{orig: m, source: source, sink: sink, r: r}
}

// Len returns the node count.
func (res *Residual) Len() int { return len(res.r) }

// Capacity returns the remaining residual capacity of arc u→v.
func (res *Residual) Capacity(u, v int) int64 { return res.r[u][v] }

// Flow returns the net flow carried from u to v (negative if it runs v→u).
func (res *Residual) Flow(u, v int) int64 {
	if !res.orig.HasEdge(u, v) {
		return 0
	}
	return res.orig.Weight(u, v) - res.r[u][v]
}

// Value returns the total net flow leaving the source.
func (res *Residual) Value() int64 {
	var total int64
	for v := range res.r {
		total += res.Flow(res.source, v)
	}
	return total
}

// MinCut returns the source side of a minimum cut (nodes reachable from the
// source through arcs with spare capacity) and the original links crossing it.
// The crossing weights sum to the max-flow value.
func (res *Residual) MinCut() (sourceSide []bool, cut []topology.Edge) {
	n := len(res.r)
	sourceSide = make([]bool, n)
	sourceSide[res.source] = true
	queue := []int{res.source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for v := 0; v < n; v++ {
			if !sourceSide[v] && res.r[u][v] > 0 {
				sourceSide[v] = true
				queue = append(queue, v)
			}
		}
	}

	for _, e := range res.orig.Edges() {
		if sourceSide[e.From] != sourceSide[e.To] {
			cut = append(cut, e)
		}
	}

	return sourceSide, cut
}

// augment pushes f along path (a node sequence from source to sink).
func (res *Residual) augment(path []int, f int64) {
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		res.r[u][v] -= f
		res.r[v][u] += f
	}
}

// validate checks the common argument contract of every algorithm.
func validate(method string, m *topology.Matrix, source, sink int) error {
	switch {
	case m == nil:
		return wrap(method, ErrNilGraph)
	case !m.InRange(source):
		return wrap(method, ErrSourceNotFound)
	case !m.InRange(sink):
		return wrap(method, ErrSinkNotFound)
	case source == sink:
		return wrap(method, ErrSameEndpoints)
	}
	return nil
}
