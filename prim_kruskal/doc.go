// SPDX-License-Identifier: MIT

// Package prim_kruskal computes minimum spanning trees over a weighted,
// undirected topology.Matrix: Prim’s algorithm from a root and Kruskal’s
// algorithm over the whole topology.
//
// What & Why
//
//   - An MST of a connected weighted graph is the cheapest edge subset that
//     still connects every node. Under link failure the topology may split;
//     the size of the root's tree then tells how many nodes the root still
//     reaches.
//
// Algorithms Provided
//
//   - Prim(m, root) ([]topology.Edge, int64, error)
//
//   - Strategy: key-array Prim, O(N²), the natural form for a dense matrix.
//     Ties break by lowest weight, then lowest tree endpoint, then lowest
//     new node.
//
//   - Truncation: stops when no crossing edge remains and returns the tree of
//     root's component (fewer than N-1 edges). This is not an error.
//
//   - MST(m) is Prim rooted at node 0.
//
//   - Kruskal(m) ([]topology.Edge, int64, error)
//
//   - Strategy: stable sort of row-major edges by weight, then union-find with
//     path compression and union by rank.
//
//   - Result: the minimum spanning forest (one tree per component).
//
//   - Compute(m, opts...) dispatches by MSTOptions.Method and, with
//     WithRequireSpanning, reports ErrDisconnected for partial results.
//
// Both algorithms yield the same total weight on a connected topology.
package prim_kruskal
