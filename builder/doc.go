// SPDX-License-Identifier: MIT

// Package builder generates the weighted, undirected topologies that a
// resilience run starts from. Every generator returns a fresh
// *topology.Matrix whose edge weights (capacities) are drawn from a WeightFn.
//
// The package offers the following key components:
//
//   - Policies (closed set, dispatched by Generate):
//     – FullyConnected(n):   every pair linked, n(n-1)/2 edges.
//     – Constant(n, k):      greedy lowest-degree-first linking, degree ≤ k.
//     – Clustered(n, c):     c star clusters whose centroids form a ring,
//     plus random extra links inside each cluster.
//   - Fixtures:
//     – Ring(n):             the cycle C_n, used by tests and examples.
//   - Configuration primitives:
//     – BuilderOption:       WithSeed, WithRand, WithWeightFn, WithMaxWeight,
//     WithConstantWeight.
//   - Edge-weight distributions (WeightFn implementations):
//     – UniformWeightFn:     uniform integers in [min,max] (default [1,10]).
//     – ConstantWeightFn:    fixed user-provided value.
//
// Guarantees:
//
//   - Generated matrices are symmetric, carry SelfLoop on the diagonal, and
//     hold weights in [1, max] off the diagonal.
//   - Same parameters and seed produce identical matrices.
//   - Invalid parameters return errors wrapping ErrInvalidParameters; the
//     generators never silently substitute other parameters.
//   - Option constructors panic on meaningless input (nil RNG, max < 1).
package builder
