// SPDX-License-Identifier: MIT

// Package dijkstra provides single-source shortest paths over a weighted
// topology.Matrix with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath(m, s, d) returns the ordered node sequence and total weight
//     of a minimum-weight s→d path. An unreachable d yields the zero Path and
//     no error; s == d yields the single-node path [s] with weight 0.
//   - Dijkstra(m, s) and Distances(m, s) report distances (and predecessors)
//     to every node; Unreachable marks nodes outside s's component.
//
// Key features:
//
//   - Lazy decrease-key with explicit tombstones: a node has one live heap
//     entry at a time; superseded entries are marked dead and skipped on pop.
//   - Deterministic ties: equal distances pop in ascending node order and a
//     predecessor only changes on a strictly shorter distance.
//   - MaxDistance: nodes beyond a distance cap are left unreachable.
//   - InfEdgeThreshold: edges with weight ≥ threshold are impassable.
//
// Performance and complexity:
//
//   - Time:  O(N² + E log E); every finalized row is scanned once.
//   - Space: O(N + E).
package dijkstra
