// SPDX-License-Identifier: MIT
// Package: linkfail/builder
//
// weight_fn.go — edge-weight distributions for generators.

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight given a *rand.Rand source.
// It must be deterministic for a given RNG state; panics in constructors
// indicate programmer error in configuration.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 1.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value int64) WeightFn {
	if value < MinEdgeWeight {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ %d, got %d", MinEdgeWeight, value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling integers uniformly in
// [min, max] inclusive. Panics if min < 1 or max < min.
// If rng is nil, yields min to keep a deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max int64) WeightFn {
	if min < MinEdgeWeight || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
