// SPDX-License-Identifier: MIT

// Package topology defines the weighted adjacency matrix every other package
// in linkfail operates on.
//
// A topology of N nodes is an N×N matrix of int64 weights:
//
//	w[i][j] == w[j][i]      symmetric (undirected links)
//	w[i][i] == SelfLoop     self-loop marker, never an edge
//	w[i][j] == 0            no link
//	w[i][j] >  0            link with that weight (capacity for max-flow)
//
// The node count is fixed at construction. The only mutations are SetEdge
// (generators, construction phase) and RemoveEdge (failure sampling); both
// keep the matrix symmetric and the diagonal intact.
//
// Snapshot captures an immutable deep copy before perturbation. Restore hands
// out private copies, which is how the trial orchestrator resets a fixed
// topology between trials without sharing mutable state.
//
// Errors:
//
//	ErrInvalidParameters - n < 1, ragged or asymmetric rows
//	ErrNodeOutOfRange    - index outside [0, N)
//	ErrSelfLoop          - SetEdge/RemoveEdge with i == j
//	ErrBadWeight         - SetEdge with w <= 0
//	ErrAsymmetric        - FromRows/Validate found w[i][j] != w[j][i]
package topology
