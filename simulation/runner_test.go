package simulation_test

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkfail/builder"
	"github.com/katalvlaran/linkfail/failure"
	"github.com/katalvlaran/linkfail/simulation"
	"github.com/katalvlaran/linkfail/topology"
)

func fixedConfig(policy builder.Policy, params builder.Params, trials int) simulation.Config {
	cfg := simulation.DefaultConfig()
	cfg.Policy = policy
	cfg.Params = params
	cfg.Trials = trials
	cfg.Seed = 42
	return cfg
}

func randomizedConfig(policy builder.Policy, trials int) simulation.Config {
	cfg := simulation.DefaultConfig()
	cfg.Policy = policy
	cfg.Randomize = true
	cfg.Trials = trials
	cfg.Seed = 7
	cfg.NodeBounds = simulation.Bounds{Min: 8, Max: 20}
	cfg.DegreeBounds = simulation.Bounds{Min: 3, Max: 6}
	cfg.ClusterBounds = simulation.Bounds{Min: 2, Max: 4}
	cfg.ClusterSizeBounds = simulation.Bounds{Min: 3, Max: 5}
	return cfg
}

// requirePrefix checks the records are exactly trials 0..len-1 in order.
func requirePrefix(t *testing.T, recs []simulation.TrialRecord) {
	t.Helper()
	for i, rec := range recs {
		require.Equal(t, i, rec.Trial, "record %d out of order", i)
	}
}

func TestRun_EndToEndRing(t *testing.T) {
	ring, err := builder.Ring(4, builder.WithConstantWeight(1))
	require.NoError(t, err)

	cfg := simulation.DefaultConfig()
	cfg.Topology = ring
	cfg.Trials = 5
	cfg.Sampler = failure.NewSampler(failure.WithFixedProbability(0))

	recs, err := simulation.Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, recs, 5)
	requirePrefix(t, recs)

	sink := recs[0].Sink
	require.GreaterOrEqual(t, sink, 1)
	require.LessOrEqual(t, sink, 3)
	for _, rec := range recs {
		assert.Equal(t, sink, rec.Sink, "fixed mode keeps one sink")
		assert.Zero(t, rec.FailureProbability)
		assert.Equal(t, 4, rec.NodeCount)
		assert.Equal(t, 4, rec.EdgesBefore)
		assert.Zero(t, rec.EdgesRemoved)
		assert.Equal(t, 1, rec.ComponentCount)
		assert.Equal(t, 3, rec.MSTEdges)
		assert.Equal(t, int64(3), rec.MSTWeight)
		assert.Equal(t, 4, rec.ReachableNodes)
		assert.Equal(t, int64(min(sink, 4-sink)), rec.ShortestPathWeight)
		assert.Equal(t, min(sink, 4-sink), rec.ShortestPathHops)
		assert.Equal(t, int64(2), rec.MaxFlow)
		assert.Equal(t, 4, rec.LargestComponent)
		assert.Equal(t, int64(3), rec.SpanningForestWeight)
		assert.Equal(t, 2, rec.MinCutLinks)
	}
	require.Equal(t, 4, ring.EdgeCount(), "input topology untouched")
}

func TestRun_TotalFailure(t *testing.T) {
	cfg := fixedConfig(builder.PolicyFullyConnected, builder.Params{Nodes: 12}, 3)
	cfg.Sampler = failure.NewSampler(failure.WithFixedProbability(1))

	recs, err := simulation.Run(context.Background(), cfg)
	require.NoError(t, err)
	for _, rec := range recs {
		assert.Equal(t, 66, rec.EdgesBefore)
		assert.Equal(t, 66, rec.EdgesRemoved)
		assert.Equal(t, 12, rec.ComponentCount)
		assert.Zero(t, rec.MSTEdges)
		assert.Equal(t, 1, rec.ReachableNodes)
		assert.Zero(t, rec.ShortestPathWeight)
		assert.Zero(t, rec.ShortestPathHops)
		assert.Zero(t, rec.MaxFlow)
		assert.Equal(t, 1, rec.LargestComponent)
		assert.Zero(t, rec.SpanningForestWeight)
		assert.Zero(t, rec.MinCutLinks)
	}
}

func TestRun_SplitTopology(t *testing.T) {
	// 0-1 (weight 2) and the path 2-3-4 (weight 1 each).
	m, err := topology.New(5)
	require.NoError(t, err)
	require.NoError(t, m.SetEdge(0, 1, 2))
	require.NoError(t, m.SetEdge(2, 3, 1))
	require.NoError(t, m.SetEdge(3, 4, 1))

	cfg := simulation.DefaultConfig()
	cfg.Topology = m
	cfg.Trials = 3
	cfg.Sampler = failure.NewSampler(failure.WithFixedProbability(0))

	recs, err := simulation.Run(context.Background(), cfg)
	require.NoError(t, err)
	for _, rec := range recs {
		assert.Equal(t, 2, rec.ComponentCount)
		assert.Equal(t, 3, rec.LargestComponent, "largest component excludes the source")
		assert.Equal(t, 1, rec.MSTEdges)
		assert.Equal(t, int64(2), rec.MSTWeight)
		assert.Equal(t, int64(4), rec.SpanningForestWeight, "forest spans both components")
		if rec.Sink == 1 {
			assert.Equal(t, int64(2), rec.MaxFlow)
			assert.Equal(t, 1, rec.MinCutLinks)
		} else {
			assert.Zero(t, rec.MaxFlow)
			assert.Zero(t, rec.MinCutLinks)
		}
	}
}

func TestRun_DeterministicAcrossWorkers(t *testing.T) {
	cases := map[string]simulation.Config{
		"fixed/constant":       fixedConfig(builder.PolicyConstant, builder.Params{Nodes: 20, Degree: 4}, 40),
		"fixed/clustered":      fixedConfig(builder.PolicyClustered, builder.Params{Nodes: 24, Clusters: 4}, 40),
		"randomized/complete":  randomizedConfig(builder.PolicyFullyConnected, 40),
		"randomized/constant":  randomizedConfig(builder.PolicyConstant, 40),
		"randomized/clustered": randomizedConfig(builder.PolicyClustered, 40),
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			var want []simulation.TrialRecord
			for _, workers := range []int{1, 3, 8} {
				cfg.Workers = workers
				recs, err := simulation.Run(context.Background(), cfg)
				require.NoError(t, err)
				require.Len(t, recs, cfg.Trials)
				requirePrefix(t, recs)
				if want == nil {
					want = recs
					continue
				}
				require.Equal(t, want, recs, "workers=%d", workers)
			}
		})
	}
}

func TestRun_SeedChangesRecords(t *testing.T) {
	cfg := fixedConfig(builder.PolicyFullyConnected, builder.Params{Nodes: 10}, 10)
	a, err := simulation.Run(context.Background(), cfg)
	require.NoError(t, err)
	cfg.Seed++
	b, err := simulation.Run(context.Background(), cfg)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestRun_RandomizedDrawsWithinBounds(t *testing.T) {
	cfg := randomizedConfig(builder.PolicyClustered, 60)
	cfg.KeepSnapshots = true

	r, err := simulation.NewRunner(cfg)
	require.NoError(t, err)
	res, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, simulation.ModeRandomized, res.Mode())
	require.Len(t, res.Snapshots, len(res.Records))

	sizes := map[int]bool{}
	sinks := map[int]bool{}
	for i, rec := range res.Records {
		sizes[rec.NodeCount] = true
		sinks[rec.Sink] = true
		// clusters ∈ [2,4], size ∈ [3,5]
		assert.GreaterOrEqual(t, rec.NodeCount, 6)
		assert.LessOrEqual(t, rec.NodeCount, 20)
		assert.GreaterOrEqual(t, rec.Sink, 1)
		assert.Less(t, rec.Sink, rec.NodeCount)
		assert.Equal(t, rec.NodeCount, res.Snapshots[i].Len())
		assert.Equal(t, rec.EdgesBefore, res.Snapshots[i].EdgeCount())
	}
	assert.Greater(t, len(sizes), 1, "node count varies between trials")
	assert.Greater(t, len(sinks), 1, "sink is redrawn every trial")
}

func TestRun_ConstantDegreeClamped(t *testing.T) {
	cfg := randomizedConfig(builder.PolicyConstant, 20)
	cfg.NodeBounds = simulation.Bounds{Min: 3, Max: 6}
	cfg.DegreeBounds = simulation.DefaultDegreeBounds // far above n-1
	cfg.KeepSnapshots = true

	r, err := simulation.NewRunner(cfg)
	require.NoError(t, err)
	res, err := r.Run(context.Background())
	require.NoError(t, err)
	for _, snap := range res.Snapshots {
		m := snap.Restore()
		for v := 0; v < m.Len(); v++ {
			assert.LessOrEqual(t, m.Degree(v), m.Len()-1)
		}
	}
}

func TestRun_FixedSnapshotAndSeries(t *testing.T) {
	cfg := fixedConfig(builder.PolicyFullyConnected, builder.Params{Nodes: 15}, 12)
	r, err := simulation.NewRunner(cfg)
	require.NoError(t, err)
	res, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Snapshots, 1)
	require.Equal(t, 105, res.Snapshots[0].EdgeCount())
	require.NotEqual(t, uuid.Nil, res.RunID)
	for _, rec := range res.Records {
		assert.Equal(t, r.Sink(), rec.Sink)
	}

	s := res.Series(simulation.MetricMaxFlow)
	require.Equal(t, simulation.ModeFixed, s.Mode)
	require.Equal(t, 12, s.Len())
	require.Nil(t, s.Z)
	for i, rec := range res.Records {
		assert.Equal(t, rec.FailureProbability, s.X[i])
		assert.Equal(t, float64(rec.MaxFlow), s.Y[i])
	}

	rs, err := simulation.NewRunner(randomizedConfig(builder.PolicyFullyConnected, 5))
	require.NoError(t, err)
	rres, err := rs.Run(context.Background())
	require.NoError(t, err)
	z := rres.Series(simulation.MetricComponents).Z
	require.Len(t, z, 5)
	assert.Equal(t, float64(rres.Records[2].NodeCount), z[2])
	assert.Empty(t, rres.Snapshots, "no snapshots without KeepSnapshots")
}

func TestRun_AnalyticsSubset(t *testing.T) {
	cfg := fixedConfig(builder.PolicyFullyConnected, builder.Params{Nodes: 10}, 4)
	cfg.Analytics = simulation.AnalyticComponents
	recs, err := simulation.Run(context.Background(), cfg)
	require.NoError(t, err)
	for _, rec := range recs {
		assert.Positive(t, rec.ComponentCount)
		assert.Zero(t, rec.MSTEdges)
		assert.Zero(t, rec.MaxFlow)
		assert.Zero(t, rec.ShortestPathHops)
	}

	// Components alone accept a single-node topology.
	cfg.Params.Nodes = 1
	recs, err = simulation.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, recs[0].ComponentCount)
}

func TestNewRunner_Invalid(t *testing.T) {
	base := fixedConfig(builder.PolicyFullyConnected, builder.Params{Nodes: 10}, 5)
	cases := map[string]func(c *simulation.Config){
		"no trials":           func(c *simulation.Config) { c.Trials = 0 },
		"negative workers":    func(c *simulation.Config) { c.Workers = -1 },
		"negative max weight": func(c *simulation.Config) { c.MaxWeight = -3 },
		"unknown analytic":    func(c *simulation.Config) { c.Analytics = 1 << 6 },
		"unknown policy":      func(c *simulation.Config) { c.Policy = builder.Policy(9) },
		"sink needs 2 nodes":  func(c *simulation.Config) { c.Params.Nodes = 1 },
		"degree too high": func(c *simulation.Config) {
			c.Policy = builder.PolicyConstant
			c.Params.Degree = 10
		},
		"clusters do not divide": func(c *simulation.Config) {
			c.Policy = builder.PolicyClustered
			c.Params.Clusters = 3
		},
		"node bounds inverted": func(c *simulation.Config) {
			c.Randomize = true
			c.NodeBounds = simulation.Bounds{Min: 30, Max: 20}
		},
		"node bounds below sink floor": func(c *simulation.Config) {
			c.Randomize = true
			c.NodeBounds = simulation.Bounds{Min: 1, Max: 20}
		},
		"cluster bounds zero": func(c *simulation.Config) {
			c.Randomize = true
			c.Policy = builder.PolicyClustered
			c.ClusterBounds = simulation.Bounds{Min: 0, Max: 3}
		},
		"degree bounds zero": func(c *simulation.Config) {
			c.Randomize = true
			c.Policy = builder.PolicyConstant
			c.DegreeBounds = simulation.Bounds{Min: 0, Max: 3}
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			r, err := simulation.NewRunner(cfg)
			require.Nil(t, r)
			require.ErrorIs(t, err, simulation.ErrInvalidConfig)
			require.ErrorIs(t, err, topology.ErrInvalidParameters)
		})
	}
}

func TestRun_CancelledBeforeStart(t *testing.T) {
	cfg := fixedConfig(builder.PolicyFullyConnected, builder.Params{Nodes: 10}, 1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := simulation.NewRunner(cfg)
	require.NoError(t, err)
	res, err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, res.Cancelled)
	require.Less(t, len(res.Records), cfg.Trials)
	requirePrefix(t, res.Records)
}

// cancelAfter cancels the run once n records were appended.
type cancelAfter struct {
	n      int64
	seen   atomic.Int64
	cancel context.CancelFunc
	done   atomic.Bool
}

func (c *cancelAfter) RunStarted(simulation.Config) {}

func (c *cancelAfter) TrialDone(simulation.TrialRecord, time.Duration) {
	if c.seen.Add(1) == c.n {
		c.cancel()
	}
}

func (c *cancelAfter) RunDone(*simulation.Result, time.Duration, error) { c.done.Store(true) }

func TestRun_CancelledMidRun(t *testing.T) {
	cfg := fixedConfig(builder.PolicyFullyConnected, builder.Params{Nodes: 30}, 5000)
	cfg.Workers = 4
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	obs := &cancelAfter{n: 10, cancel: cancel}

	r, err := simulation.NewRunner(cfg, simulation.WithObserver(obs))
	require.NoError(t, err)
	res, err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, res.Cancelled)
	require.True(t, obs.done.Load())
	require.GreaterOrEqual(t, len(res.Records), 10)
	require.Less(t, len(res.Records), cfg.Trials)
	requirePrefix(t, res.Records)

	// The prefix matches an uncancelled run.
	full, err := simulation.NewRunner(fixedConfig(builder.PolicyFullyConnected, builder.Params{Nodes: 30}, len(res.Records)))
	require.NoError(t, err)
	want, err := full.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, want.Records, res.Records)
}

func TestRun_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	cfg := fixedConfig(builder.PolicyFullyConnected, builder.Params{Nodes: 6}, 3)

	_, err := simulation.Run(context.Background(), cfg, simulation.WithLogger(logger), simulation.WithFlowVerbose())
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"message":"run started"`)
	assert.Contains(t, out, `"message":"trial done"`)
	assert.Contains(t, out, `"message":"run finished"`)
	assert.Contains(t, out, `"run_id":`)
}

func TestWithObserver_NilPanics(t *testing.T) {
	require.Panics(t, func() { simulation.WithObserver(nil) })
}
