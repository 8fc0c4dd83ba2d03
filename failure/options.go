// SPDX-License-Identifier: MIT
// Package: linkfail/failure
//
// options.go — functional options for NewSampler. Constructors panic on
// meaningless inputs; Sampler methods never panic.

package failure

import (
	"fmt"
	"math"
)

type samplerConfig struct {
	mean     float64
	stdDev   float64
	lower    float64
	upper    float64
	fixed    bool
	fixedVal float64
}

// Option customizes a Sampler.
type Option func(*samplerConfig)

// WithMean sets the untruncated mean μ. Panics on NaN or ±Inf.
func WithMean(mu float64) Option {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		panic(fmt.Sprintf("failure: WithMean(%v): must be finite", mu))
	}
	return func(c *samplerConfig) { c.mean = mu }
}

// WithStdDev sets the untruncated standard deviation σ. Panics if σ ≤ 0.
func WithStdDev(sigma float64) Option {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		panic(fmt.Sprintf("failure: WithStdDev(%v): must be > 0", sigma))
	}
	return func(c *samplerConfig) { c.stdDev = sigma }
}

// WithBounds sets the truncation interval. Panics unless 0 ≤ lo < hi ≤ 1.
func WithBounds(lo, hi float64) Option {
	if !(lo >= 0 && hi <= 1 && lo < hi) {
		panic(fmt.Sprintf("failure: WithBounds(%v, %v): require 0 ≤ lo < hi ≤ 1", lo, hi))
	}
	return func(c *samplerConfig) {
		c.lower = lo
		c.upper = hi
	}
}

// WithFixedProbability makes Draw always return p. Panics unless p ∈ [0,1].
func WithFixedProbability(p float64) Option {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("failure: WithFixedProbability(%v): require 0 ≤ p ≤ 1", p))
	}
	return func(c *samplerConfig) {
		c.fixed = true
		c.fixedVal = p
	}
}
