// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/linkfail/simulation"
)

// Registry holds all metrics of a linkfail process. It implements
// simulation.Observer.
type Registry struct {
	// Trial Metrics
	TrialsTotal         prometheus.Counter
	TrialDuration       prometheus.Histogram
	FailureProbability  prometheus.Histogram
	EdgesRemovedTotal   prometheus.Counter
	ComponentCount      prometheus.Histogram
	ReachableFraction   prometheus.Histogram
	MaxFlow             prometheus.Histogram
	ShortestPathMissing prometheus.Counter

	// Run Metrics
	RunsTotal   *prometheus.CounterVec
	RunDuration prometheus.Histogram
	LastRunSize prometheus.Gauge
	RunTrials   prometheus.Gauge

	registry  *prometheus.Registry
	analytics simulation.Analytics
}

var _ simulation.Observer = (*Registry)(nil)

// NewRegistry creates a registry with every metric initialized on a private
// prometheus registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initTrialMetrics()
	r.initRunMetrics()
	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

func (r *Registry) initTrialMetrics() {
	r.TrialsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "linkfail_trials_total",
			Help: "Total number of completed trials",
		},
	)

	r.TrialDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "linkfail_trial_duration_seconds",
			Help:    "Wall time of one trial in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
	)

	r.FailureProbability = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "linkfail_failure_probability",
			Help:    "Sampled per-trial link failure probability",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
	)

	r.EdgesRemovedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "linkfail_edges_removed_total",
			Help: "Total number of links removed by failure sampling",
		},
	)

	r.ComponentCount = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "linkfail_component_count",
			Help:    "Connected components after failures",
			Buckets: prometheus.ExponentialBuckets(1, 2, 9),
		},
	)

	r.ReachableFraction = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "linkfail_reachable_fraction",
			Help:    "Fraction of nodes reachable from node 0 after failures",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
	)

	r.MaxFlow = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "linkfail_max_flow",
			Help:    "Maximum flow from node 0 to the sink after failures",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	r.ShortestPathMissing = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "linkfail_shortest_path_unreachable_total",
			Help: "Trials whose sink was unreachable from node 0",
		},
	)
}

func (r *Registry) initRunMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkfail_runs_total",
			Help: "Total number of runs by outcome",
		},
		[]string{"status"}, // completed, cancelled, failed
	)

	r.RunDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "linkfail_run_duration_seconds",
			Help:    "Wall time of a run in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	r.RunTrials = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "linkfail_run_trials",
			Help: "Trials requested by the most recent run",
		},
	)

	r.LastRunSize = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "linkfail_last_run_records",
			Help: "Records collected by the most recent run",
		},
	)
}

// RunStarted remembers which analytics the run measures.
func (r *Registry) RunStarted(cfg simulation.Config) {
	r.analytics = cfg.Analytics
	r.RunTrials.Set(float64(cfg.Trials))
}

// TrialDone records one finished trial. Analytic histograms only see
// analytics the run requested.
func (r *Registry) TrialDone(rec simulation.TrialRecord, elapsed time.Duration) {
	r.TrialsTotal.Inc()
	r.TrialDuration.Observe(elapsed.Seconds())
	r.FailureProbability.Observe(rec.FailureProbability)
	r.EdgesRemovedTotal.Add(float64(rec.EdgesRemoved))
	if r.analytics.Has(simulation.AnalyticComponents) {
		r.ComponentCount.Observe(float64(rec.ComponentCount))
	}
	if r.analytics.Has(simulation.AnalyticMST) && rec.NodeCount > 0 {
		r.ReachableFraction.Observe(float64(rec.ReachableNodes) / float64(rec.NodeCount))
	}
	if r.analytics.Has(simulation.AnalyticMaxFlow) {
		r.MaxFlow.Observe(float64(rec.MaxFlow))
	}
	if r.analytics.Has(simulation.AnalyticShortestPath) && rec.ShortestPathHops == 0 {
		r.ShortestPathMissing.Inc()
	}
}

// RunDone records the outcome of a run.
func (r *Registry) RunDone(res *simulation.Result, elapsed time.Duration, err error) {
	status := "completed"
	switch {
	case res != nil && res.Cancelled:
		status = "cancelled"
	case err != nil:
		status = "failed"
	}
	r.RunsTotal.WithLabelValues(status).Inc()
	r.RunDuration.Observe(elapsed.Seconds())
	if res != nil {
		r.LastRunSize.Set(float64(len(res.Records)))
	}
}

// ErrNoPath is returned by WriteTextfile for an empty path.
var ErrNoPath = errors.New("metrics: textfile path is empty")

// WriteTextfile writes every metric in the Prometheus text format to path,
// for the node-exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	if path == "" {
		return ErrNoPath
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
