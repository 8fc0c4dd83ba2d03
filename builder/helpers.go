// SPDX-License-Identifier: MIT
// Package: linkfail/builder
//
// helpers.go — small shared helpers for generators.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkfail/topology"
)

// newMatrix allocates an edgeless topology after validating n.
func newMatrix(method string, n int) (*topology.Matrix, error) {
	if err := validateMin(method, "n", n, MinNodes); err != nil {
		return nil, err
	}
	m, err := topology.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return m, nil
}

// link draws one weight from cfg and writes the undirected edge u–v.
// A weight function that yields w < 1 surfaces as ErrInvalidParameters.
func link(method string, m *topology.Matrix, cfg builderConfig, u, v int) error {
	w := cfg.weight()
	if w < MinEdgeWeight {
		return invalidf(method, "weight function returned %d for %d-%d", w, u, v)
	}
	if err := m.SetEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}
