// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram is a fixed-width binning. Bin i covers
// [Dividers[i], Dividers[i+1]); the last divider lies just above the maximum
// so every value falls in a bin.
type Histogram struct {
	Dividers []float64 `json:"dividers" yaml:"dividers"`
	Counts   []float64 `json:"counts" yaml:"counts"`
}

// NewHistogram bins values into the given number of equal-width bins
// spanning [min, max].
func NewHistogram(values []float64, bins int) (Histogram, error) {
	if bins < 1 {
		return Histogram{}, ErrBadBins
	}
	if len(values) == 0 {
		return Histogram{}, ErrNoData
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if hi == lo {
		hi = lo + 1
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	dividers[bins] = math.Nextafter(dividers[bins], math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	return Histogram{Dividers: dividers, Counts: counts}, nil
}

// Total returns the number of binned values.
func (h Histogram) Total() int { return int(floats.Sum(h.Counts)) }
