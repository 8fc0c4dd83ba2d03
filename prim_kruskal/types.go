// SPDX-License-Identifier: MIT

// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linkfail/topology"
)

// ErrInvalidGraph indicates a nil topology or an unknown method name.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil topology")

// ErrRootNotFound indicates that the Prim root index is out of range.
var ErrRootNotFound = errors.New("prim_kruskal: root node not found")

// ErrDisconnected indicates that a spanning tree covering every node cannot
// be formed. Prim and Kruskal never return it on their own (they return the
// root's tree or the spanning forest); Compute returns it when
// MSTOptions.RequireSpanning is set.
var ErrDisconnected = errors.New("prim_kruskal: topology is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting node to use.
// Use DefaultOptions() to get a default setup (Prim from node 0).
//
// Complexity: O(N²) for Prim, O(E log E + α(N)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim's algorithm. Unused by Kruskal.
	Root int

	// RequireSpanning turns a result with fewer than N-1 edges into ErrDisconnected.
	RequireSpanning bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting node for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithRequireSpanning returns an Option that rejects partial trees.
func WithRequireSpanning() Option {
	return func(opts *MSTOptions) {
		opts.RequireSpanning = true
	}
}

// DefaultOptions returns MSTOptions initialized for Prim rooted at node 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodPrim}
}

// Compute selects and runs the MST algorithm based on the options.
//
// Returns:
//
//	[]topology.Edge — edges of the tree (or forest).
//	int64           — total weight.
//	error           — ErrInvalidGraph, ErrRootNotFound or, with RequireSpanning,
//	                  ErrDisconnected (edges are still returned).
func Compute(m *topology.Matrix, opts ...Option) ([]topology.Edge, int64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	var (
		edges []topology.Edge
		total int64
		err   error
	)
	switch o.Method {
	case MethodKruskal:
		edges, total, err = Kruskal(m)
	case MethodPrim:
		edges, total, err = Prim(m, o.Root)
	default:
		return nil, 0, fmt.Errorf("prim_kruskal: Compute: method %q: %w", o.Method, ErrInvalidGraph)
	}
	if err != nil {
		return nil, 0, err
	}
	if o.RequireSpanning && len(edges) < m.Len()-1 {
		return edges, total, fmt.Errorf("prim_kruskal: Compute: %d of %d edges: %w",
			len(edges), m.Len()-1, ErrDisconnected)
	}

	return edges, total, nil
}
