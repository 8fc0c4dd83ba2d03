// SPDX-License-Identifier: MIT
// Package: linkfail/failure
//
// sampler.go — failure probability draw and independent link removal.
//
// Contract:
//   • Draw returns p ~ TruncNormal(μ, σ, [lo, hi]) by inverse-CDF sampling,
//     so the truncation is exact (no rejection loop, no mean shift).
//   • Apply visits every linked pair i<j in row-major order and removes it
//     when u ≤ p with u ~ U[0,1). p = 0 removes nothing; p = 1 removes all.
//   • Sampler is immutable after construction and safe to share; the RNG is
//     supplied per call and owned by the caller.
//
// Complexity:
//   • Draw O(1). Apply O(N²) matrix scan.
//
// Determinism:
//   • One Float64 for Draw (none when fixed), then one Float64 per linked pair
//     in (i,j) order. Same RNG state ⇒ same outcome.

package failure

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/linkfail/topology"
)

// Default distribution parameters.
const (
	DefaultMean   = 0.5
	DefaultStdDev = 0.5
	DefaultLower  = 0.0
	DefaultUpper  = 1.0
)

// Sampler draws a failure probability and applies it to a topology.
type Sampler struct {
	normal distuv.Normal
	lower  float64
	upper  float64
	cdfLo  float64
	cdfHi  float64

	fixed    bool
	fixedVal float64
}

// NewSampler returns a Sampler with the defaults overridden by opts.
// Options panic on meaningless values.
func NewSampler(opts ...Option) *Sampler {
	c := samplerConfig{
		mean:   DefaultMean,
		stdDev: DefaultStdDev,
		lower:  DefaultLower,
		upper:  DefaultUpper,
	}
	for _, opt := range opts {
		opt(&c)
	}

	s := &Sampler{
		normal:   distuv.Normal{Mu: c.mean, Sigma: c.stdDev},
		lower:    c.lower,
		upper:    c.upper,
		fixed:    c.fixed,
		fixedVal: c.fixedVal,
	}
	s.cdfLo = s.normal.CDF(c.lower)
	s.cdfHi = s.normal.CDF(c.upper)

	return s
}

// Mean returns the untruncated mean μ.
func (s *Sampler) Mean() float64 { return s.normal.Mu }

// StdDev returns the untruncated standard deviation σ.
func (s *Sampler) StdDev() float64 { return s.normal.Sigma }

// Bounds returns the truncation interval.
func (s *Sampler) Bounds() (lo, hi float64) { return s.lower, s.upper }

// Fixed reports whether the sampler always returns one probability.
func (s *Sampler) Fixed() (float64, bool) { return s.fixedVal, s.fixed }

// Draw returns one failure probability in [lo, hi].
func (s *Sampler) Draw(rng *rand.Rand) float64 {
	if s.fixed {
		return s.fixedVal
	}

	// Map u into the CDF mass of [lo, hi] and invert. If the interval sits
	// far in a tail the mass can underflow to zero; fall back to the bound
	// nearest the mean.
	mass := s.cdfHi - s.cdfLo
	if mass <= 0 {
		return s.clamp(s.normal.Mu)
	}
	q := s.cdfLo + rng.Float64()*mass
	if q <= 0 || q >= 1 {
		return s.clamp(s.normal.Mu)
	}

	return s.clamp(s.normal.Quantile(q))
}

// Apply removes each linked pair of m independently with probability p and
// returns how many links were removed. Values of p outside [0,1] are clamped.
func (s *Sampler) Apply(m *topology.Matrix, p float64, rng *rand.Rand) int {
	if p <= 0 || math.IsNaN(p) {
		return 0
	}

	n := m.Len()
	removed := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !m.HasEdge(i, j) {
				continue
			}
			if rng.Float64() <= p {
				// Indices come from the matrix itself, so the pair is valid.
				if ok, _ := m.RemoveEdge(i, j); ok {
					removed++
				}
			}
		}
	}

	return removed
}

// SampleAndApply draws p and applies it to m in one call.
func (s *Sampler) SampleAndApply(m *topology.Matrix, rng *rand.Rand) (p float64, removed int) {
	p = s.Draw(rng)
	removed = s.Apply(m, p, rng)
	return p, removed
}

func (s *Sampler) clamp(x float64) float64 {
	return math.Min(math.Max(x, s.lower), s.upper)
}
