// SPDX-License-Identifier: MIT
// Package: linkfail/builder
//
// impl_constant.go — implementation of the degree-bounded ("constant") policy.
//
// Canonical model:
//   • Greedy lowest-degree-first linking. Nodes are visited in index order;
//     each visited node is linked to the currently least-connected eligible
//     peers until it reaches degree k or no eligible peer remains.
//   • A min-heap keyed by (degree, index) holds the eligible peers. Entries of
//     nodes already visited or saturated are dropped lazily on pop.
//   • Peers already adjacent to the visited node are set aside and pushed back
//     once the visited node is done.
//
// Contract:
//   • n ≥ 1, 1 ≤ k ≤ n-1 (else ErrInvalidParameters). n = 1 admits no k and
//     is rejected.
//   • No node ever exceeds degree k. Some nodes may end below k (the greedy
//     pass does not guarantee a k-regular result).
//   • k = n-1 yields the complete topology.
//
// Complexity:
//   • Time O(n² + n·k·log n); the n² term is the matrix allocation.
//   • Space O(n) beyond the matrix.
//
// Determinism:
//   • Heap ties break by lower index and weights are drawn in link order,
//     so a fixed seed yields a fixed matrix.

package builder

import (
	"container/heap"

	"github.com/katalvlaran/linkfail/topology"
)

// degreeItem is one heap entry: a candidate peer and its degree at push time.
type degreeItem struct {
	node   int
	degree int
}

// degreeHeap is a min-heap of candidates ordered by (degree, node).
type degreeHeap []degreeItem

func (h degreeHeap) Len() int { return len(h) }
func (h degreeHeap) Less(i, j int) bool {
	if h[i].degree != h[j].degree {
		return h[i].degree < h[j].degree
	}
	return h[i].node < h[j].node
}
func (h degreeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a new item; used by heap.Push.
func (h *degreeHeap) Push(x interface{}) { *h = append(*h, x.(degreeItem)) }

// Pop removes the last item; used by heap.Pop.
func (h *degreeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Constant builds a topology of n nodes in which every node has degree ≤ k.
func Constant(n, k int, opts ...BuilderOption) (*topology.Matrix, error) {
	// 1) Validate before allocating anything.
	if err := validateMin(MethodConstant, "n", n, MinNodes); err != nil {
		return nil, err
	}
	if err := validateMin(MethodConstant, "k", k, MinDegree); err != nil {
		return nil, err
	}
	if err := validateMax(MethodConstant, "k", k, n-1); err != nil {
		return nil, err
	}

	m, err := newMatrix(MethodConstant, n)
	if err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	// 2) Seed the heap with every node at degree 0.
	eligible := make([]bool, n)
	h := make(degreeHeap, 0, n)
	for i := 0; i < n; i++ {
		eligible[i] = true
		h = append(h, degreeItem{node: i})
	}
	heap.Init(&h)

	// 3) Visit nodes in index order.
	var deferred []degreeItem
	for i := 0; i < n; i++ {
		if !eligible[i] {
			continue
		}
		eligible[i] = false
		links := m.Degree(i)
		deferred = deferred[:0]

		for links < k && h.Len() > 0 {
			c := heap.Pop(&h).(degreeItem)
			if !eligible[c.node] {
				continue // visited or saturated; stale entry
			}
			if m.HasEdge(i, c.node) {
				deferred = append(deferred, c)
				continue
			}
			if err = link(MethodConstant, m, cfg, i, c.node); err != nil {
				return nil, err
			}
			links++
			if c.degree+1 < k {
				heap.Push(&h, degreeItem{node: c.node, degree: c.degree + 1})
			} else {
				eligible[c.node] = false
			}
		}

		// 4) Return set-aside peers for later visitors.
		for _, c := range deferred {
			heap.Push(&h, c)
		}
	}

	return m, nil
}
