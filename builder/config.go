// SPDX-License-Identifier: MIT
// Package: linkfail/builder
//
// config.go — internal configuration and defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng       = time-seeded source (unseeded runs); WithSeed/WithRand to pin it
//   • maxWeight = topology.DefaultMaxWeight (10)
//   • weightFn  = UniformWeightFn(1, maxWeight), resolved after all options

package builder

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/linkfail/topology"
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices (weights, cluster extras).
	rng *rand.Rand
	// Weight generator for edges; nil until resolved.
	weightFn WeightFn
	// Upper bound for the default uniform weight draw.
	maxWeight int64
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order. The weight function is resolved last so that WithMaxWeight and
// WithWeightFn compose regardless of their order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		maxWeight: topology.DefaultMaxWeight,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.weightFn == nil {
		cfg.weightFn = UniformWeightFn(MinEdgeWeight, cfg.maxWeight)
	}

	return cfg
}

// weight draws one edge weight from the resolved configuration.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}
