// SPDX-License-Identifier: MIT

package simulation

import (
	"fmt"
	"strings"
)

// Metric names one scalar column of TrialRecord.
type Metric int

const (
	MetricComponents Metric = iota
	MetricMSTEdges
	MetricReachableNodes
	MetricMSTWeight
	MetricShortestPathWeight
	MetricShortestPathHops
	MetricMaxFlow
	MetricEdgesRemoved
	MetricLargestComponent
	MetricSpanningForestWeight
	MetricMinCutLinks
)

var metricNames = [...]string{
	MetricComponents:         "component_count",
	MetricMSTEdges:           "mst_edges",
	MetricReachableNodes:     "reachable_nodes",
	MetricMSTWeight:          "mst_weight",
	MetricShortestPathWeight: "shortest_path_weight",
	MetricShortestPathHops:   "shortest_path_hops",
	MetricMaxFlow:            "max_flow",
	MetricEdgesRemoved:       "edges_removed",

	MetricLargestComponent:     "largest_component",
	MetricSpanningForestWeight: "spanning_forest_weight",
	MetricMinCutLinks:          "min_cut_links",
}

// Metrics lists every Metric in declaration order.
func Metrics() []Metric {
	out := make([]Metric, len(metricNames))
	for i := range out {
		out[i] = Metric(i)
	}
	return out
}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

// ParseMetric resolves a metric by its record field name.
func ParseMetric(name string) (Metric, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range metricNames {
		if n == name {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("ParseMetric(%q): %w", name, ErrInvalidConfig)
}

// Analytic returns the analytic that produces m (0 for edges_removed, which
// every trial records).
func (m Metric) Analytic() Analytics {
	switch m {
	case MetricComponents, MetricLargestComponent:
		return AnalyticComponents
	case MetricMSTEdges, MetricReachableNodes, MetricMSTWeight, MetricSpanningForestWeight:
		return AnalyticMST
	case MetricShortestPathWeight, MetricShortestPathHops:
		return AnalyticShortestPath
	case MetricMaxFlow, MetricMinCutLinks:
		return AnalyticMaxFlow
	}
	return 0
}

// Value extracts m from rec.
func (m Metric) Value(rec TrialRecord) float64 {
	switch m {
	case MetricComponents:
		return float64(rec.ComponentCount)
	case MetricMSTEdges:
		return float64(rec.MSTEdges)
	case MetricReachableNodes:
		return float64(rec.ReachableNodes)
	case MetricMSTWeight:
		return float64(rec.MSTWeight)
	case MetricShortestPathWeight:
		return float64(rec.ShortestPathWeight)
	case MetricShortestPathHops:
		return float64(rec.ShortestPathHops)
	case MetricMaxFlow:
		return float64(rec.MaxFlow)
	case MetricEdgesRemoved:
		return float64(rec.EdgesRemoved)
	case MetricLargestComponent:
		return float64(rec.LargestComponent)
	case MetricSpanningForestWeight:
		return float64(rec.SpanningForestWeight)
	case MetricMinCutLinks:
		return float64(rec.MinCutLinks)
	}
	return 0
}

// Series is one metric laid out for plotting: X is the failure probability,
// Y the metric and, in randomized mode only, Z the node count.
type Series struct {
	Metric Metric
	Mode   Mode
	X      []float64
	Y      []float64
	Z      []float64
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.X) }

// Series extracts metric from the records in trial order.
func (r *Result) Series(metric Metric) Series {
	n := len(r.Records)
	s := Series{
		Metric: metric,
		Mode:   r.Mode(),
		X:      make([]float64, n),
		Y:      make([]float64, n),
	}
	if s.Mode == ModeRandomized {
		s.Z = make([]float64, n)
	}
	for i, rec := range r.Records {
		s.X[i] = rec.FailureProbability
		s.Y[i] = metric.Value(rec)
		if s.Z != nil {
			s.Z[i] = float64(rec.NodeCount)
		}
	}
	return s
}
