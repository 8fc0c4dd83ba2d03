// SPDX-License-Identifier: MIT
// Package: linkfail/builder
//
// impl_complete.go — implementation of the fully-connected policy.
//
// Contract:
//   • n ≥ 1 (else ErrInvalidParameters).
//   • Emits each unordered pair {i,j}, i<j, exactly once with an independent
//     weight drawn from cfg.weightFn.
//   • Result has exactly n(n-1)/2 edges.
//
// Complexity:
//   • Time: O(n²) edges emission. Space: O(n²) for the matrix.
//
// Determinism:
//   • Pair order is lexicographic by (i,j), so a fixed seed yields fixed weights.

package builder

import "github.com/katalvlaran/linkfail/topology"

// FullyConnected builds the complete topology K_n with random weights.
func FullyConnected(n int, opts ...BuilderOption) (*topology.Matrix, error) {
	m, err := newMatrix(MethodFullyConnected, n)
	if err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = link(MethodFullyConnected, m, cfg, i, j); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
