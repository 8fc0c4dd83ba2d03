// SPDX-License-Identifier: MIT

// Package flow implements maximum-flow algorithms on a weighted, undirected
// topology.Matrix, where each link weight is a symmetric capacity.
//
// The key algorithms offered are:
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-arc) augmenting
//     paths, neighbors scanned in ascending index order.
//
//   - Time:   O(N · E²) augmentations bound, O(N²) per search on a matrix.
//
//   - Guarantees termination: each augmentation adds a positive integer.
//
//   - Dinic
//
//   - Method: level graph construction + blocking flow via DFS.
//
//   - Used to cross-check Edmonds–Karp; both return the same value.
//
// # Network model
//
// An undirected link u–v of weight w becomes two opposed arcs of capacity w.
// Flow sent along u→v reduces r[u][v] and raises r[v][u] by the same amount.
// The returned value is the total flow leaving the source.
//
// # Residual and min-cut
//
// Both algorithms return a *Residual; Residual.MinCut reports the source side
// of a minimum cut and the crossing links, whose weights sum to the flow.
//
// # Errors
//
// All argument errors wrap ErrInvalidInput: ErrNilGraph, ErrSourceNotFound,
// ErrSinkNotFound and ErrSameEndpoints. Cancellation of FlowOptions.Ctx is
// checked between augmentations and returned as the context error.
package flow
