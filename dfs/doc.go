// SPDX-License-Identifier: MIT

// Package dfs implements depth-first traversal and connectivity analysis on a
// topology.Matrix.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports pre-order and post-order hooks, cancellation via
//     context.Context, depth limiting, neighbor filtering and forest mode.
//   - Components: number of connected components (1 for a single node, N for
//     an edgeless topology).
//   - Labels: component index per node, numbered by lowest member.
//   - Reachable: which nodes share a component with a given source.
//
// Every traversal uses an explicit stack, so large topologies cannot
// overflow the goroutine stack.
//
// Complexity:
//
//   - Time:   O(N²) on an N-node matrix.
//   - Memory: O(N).
package dfs
