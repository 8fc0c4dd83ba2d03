// SPDX-License-Identifier: MIT
// Package: linkfail/builder
//
// impl_ring.go — simple ring C_n, used as a reference fixture.
//
// Contract:
//   • n ≥ 3 (else ErrInvalidParameters).
//   • Edges i–(i+1) for i in [0..n-2], plus the closing edge (n-1)–0.
//
// Complexity: O(n²) for the matrix, O(n) edges.

package builder

import "github.com/katalvlaran/linkfail/topology"

// Ring builds the cycle 0–1–…–(n-1)–0.
func Ring(n int, opts ...BuilderOption) (*topology.Matrix, error) {
	if err := validateMin(MethodRing, "n", n, MinRingNodes); err != nil {
		return nil, err
	}
	m, err := newMatrix(MethodRing, n)
	if err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	for i := 0; i < n; i++ {
		if err = link(MethodRing, m, cfg, i, (i+1)%n); err != nil {
			return nil, err
		}
	}

	return m, nil
}
