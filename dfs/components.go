// SPDX-License-Identifier: MIT
//
// components.go — connected components of a topology.
//
// Contract:
//   • Components(m) is the number of maximal connected node sets:
//     1 for a single node, N for an edgeless topology.
//   • Labels numbers components 0,1,... in order of their lowest node.
//   • All traversals are iterative; no recursion depth limit applies.
//
// Complexity: O(N²) time, O(N) extra space.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/linkfail/topology"
)

// Components returns the number of connected components of m.
// A nil topology has zero components.
func Components(m *topology.Matrix) int {
	if m == nil {
		return 0
	}
	_, count := label(m)

	return count
}

// Labels returns, for every node, the index of its component.
func Labels(m *topology.Matrix) ([]int, error) {
	if m == nil {
		return nil, ErrGraphNil
	}
	labels, _ := label(m)

	return labels, nil
}

// Reachable reports which nodes share a component with src.
func Reachable(m *topology.Matrix, src int) ([]bool, error) {
	if m == nil {
		return nil, ErrGraphNil
	}
	if !m.InRange(src) {
		return nil, fmt.Errorf("dfs: Reachable(%d): %w", src, ErrStartVertexNotFound)
	}
	res, err := DFS(m, src)
	if err != nil {
		return nil, err
	}

	return res.Visited, nil
}

// label assigns component indices to every node in one sweep.
func label(m *topology.Matrix) ([]int, int) {
	n := m.Len()
	labels := make([]int, n)
	seen := make([]bool, n)
	stack := make([]int, 0, n)
	count := 0
	for v := 0; v < n; v++ {
		if seen[v] {
			continue
		}
		stack = flood(m, v, seen, stack[:0], func(u int) { labels[u] = count })
		count++
	}

	return labels, count
}

// flood marks every node reachable from src in seen using an explicit stack,
// calling mark (if non-nil) once per newly reached node. The stack buffer is
// returned for reuse.
func flood(m *topology.Matrix, src int, seen []bool, stack []int, mark func(int)) []int {
	n := m.Len()
	seen[src] = true
	if mark != nil {
		mark(src)
	}
	stack = append(stack, src)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v := 0; v < n; v++ {
			if v != u && !seen[v] && m.HasEdge(u, v) {
				seen[v] = true
				if mark != nil {
					mark(v)
				}
				stack = append(stack, v)
			}
		}
	}

	return stack
}
