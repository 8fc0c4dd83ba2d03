// SPDX-License-Identifier: MIT
// Package: linkfail/builder
//
// impl_clustered.go — implementation of the clustered-ring policy.
//
// Canonical model:
//   • n nodes are split into c consecutive clusters of size s = n/c.
//     Cluster q owns nodes [q·s, (q+1)·s); its first node is the centroid.
//   • Ring: every centroid q·s links to the next centroid ((q+1)·s) mod n.
//     With c = 1 the ring degenerates to nothing; with c = 2 both centroids
//     share a single link.
//   • Star: every centroid links to each of its s-1 locals.
//   • Extras: each cluster with s ≥ 3 draws a quota uniformly from
//     [0, s(s-1)/2]. Each draw picks two distinct members of the cluster.
//     Draws that include the centroid are redrawn and cost nothing. Draws of
//     an already linked pair spend one unit of the quota and add nothing.
//     At most extraAttemptFactor·(quota+1) draws are made per cluster.
//
// Contract:
//   • n ≥ 1, 1 ≤ c ≤ n, c divides n (else ErrInvalidParameters).
//   • Every local is adjacent to its centroid; the centroid graph is a ring.
//   • Extras stay inside their cluster and never touch the centroid.
//
// Complexity:
//   • Time O(n²) for the matrix plus O(c·s²) extras. Space O(1) extra.
//
// Determinism:
//   • Clusters are processed in order; ring, star, then extras per cluster.

package builder

import "github.com/katalvlaran/linkfail/topology"

// extraAttemptFactor bounds the draws spent on one cluster's extra links.
const extraAttemptFactor = 8

// Clustered builds a clustered-ring topology of n nodes and c clusters.
func Clustered(n, c int, opts ...BuilderOption) (*topology.Matrix, error) {
	// 1) Validate shape.
	if err := validateMin(MethodClustered, "n", n, MinNodes); err != nil {
		return nil, err
	}
	if err := validateMin(MethodClustered, "clusters", c, MinClusters); err != nil {
		return nil, err
	}
	if err := validateMax(MethodClustered, "clusters", c, n); err != nil {
		return nil, err
	}
	if err := validateDivides(MethodClustered, n, c); err != nil {
		return nil, err
	}

	m, err := newMatrix(MethodClustered, n)
	if err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	size := n / c

	for q := 0; q < c; q++ {
		centroid := q * size

		// 2) Ring link to the next centroid (skip self and duplicates).
		next := (centroid + size) % n
		if next != centroid && !m.HasEdge(centroid, next) {
			if err = link(MethodClustered, m, cfg, centroid, next); err != nil {
				return nil, err
			}
		}

		// 3) Star: centroid to every local.
		for l := 1; l < size; l++ {
			if err = link(MethodClustered, m, cfg, centroid, centroid+l); err != nil {
				return nil, err
			}
		}

		// 4) Extras among locals.
		if size < 3 {
			continue
		}
		quota := cfg.rng.Intn(size*(size-1)/2 + 1)
		budget := extraAttemptFactor * (quota + 1)
		for ; quota > 0 && budget > 0; budget-- {
			a := cfg.rng.Intn(size)
			b := cfg.rng.Intn(size - 1)
			if b >= a {
				b++
			}
			if a == 0 || b == 0 {
				continue
			}
			quota--
			u, v := centroid+a, centroid+b
			if m.HasEdge(u, v) {
				continue
			}
			if err = link(MethodClustered, m, cfg, u, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
