// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/linkfail/simulation"
)

// ErrNoData is returned when a computation needs at least one value.
var ErrNoData = errors.New("stats: no data")

// ErrBadBins is returned for a histogram with fewer than one bin.
var ErrBadBins = errors.New("stats: bin count must be ≥ 1")

// Summary describes the distribution of one metric over a run.
// Correlation is Pearson's r between the failure probability and the
// metric; nil when undefined (no x values, one point, or zero variance).
type Summary struct {
	Metric      string   `json:"metric" yaml:"metric"`
	Count       int      `json:"count" yaml:"count"`
	Mean        float64  `json:"mean" yaml:"mean"`
	StdDev      float64  `json:"std_dev" yaml:"std_dev"`
	Min         float64  `json:"min" yaml:"min"`
	P10         float64  `json:"p10" yaml:"p10"`
	Median      float64  `json:"median" yaml:"median"`
	P90         float64  `json:"p90" yaml:"p90"`
	Max         float64  `json:"max" yaml:"max"`
	Correlation *float64 `json:"correlation,omitempty" yaml:"correlation,omitempty"`
}

// Describe summarizes values under the given name. x, when non-nil, must
// have the same length and is correlated against values.
func Describe(name string, values, x []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{Metric: name}, ErrNoData
	}
	if x != nil && len(x) != len(values) {
		return Summary{Metric: name}, fmt.Errorf("stats: Describe(%s): %d x values for %d values", name, len(x), len(values))
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	s := Summary{Metric: name, Count: len(values)}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		s.StdDev = 0
	}
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.P10 = stat.Quantile(0.1, stat.Empirical, sorted, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	if x != nil && len(values) > 1 {
		if r := stat.Correlation(x, values, nil); !math.IsNaN(r) && !math.IsInf(r, 0) {
			s.Correlation = &r
		}
	}

	return s, nil
}

// Summarize describes one plotted series against its failure probabilities.
func Summarize(s simulation.Series) (Summary, error) {
	return Describe(s.Metric.String(), s.Y, s.X)
}

// Metrics returns the metrics a run actually measured: edges_removed always,
// the others when their analytic was requested.
func Metrics(a simulation.Analytics) []simulation.Metric {
	var out []simulation.Metric
	for _, m := range simulation.Metrics() {
		if need := m.Analytic(); need == 0 || a.Has(need) {
			out = append(out, m)
		}
	}
	return out
}
