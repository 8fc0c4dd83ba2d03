package simulation

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkfail/builder"
)

var errBroken = errors.New("broken trial")

func TestRun_AbortKeepsPrefix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params = builder.Params{Nodes: 8}
	cfg.Trials = 50
	for _, workers := range []int{1, 4} {
		cfg.Workers = workers
		r, err := NewRunner(cfg)
		require.NoError(t, err)
		orig := r.trial
		r.trial = func(ctx context.Context, trial int) outcome {
			if trial == 7 || trial == 31 {
				return outcome{rec: TrialRecord{Trial: trial}, err: errBroken}
			}
			return orig(ctx, trial)
		}

		res, err := r.Run(context.Background())
		require.ErrorIs(t, err, errBroken)
		require.False(t, res.Cancelled)
		require.Len(t, res.Records, 7, "workers=%d", workers)
		for i, rec := range res.Records {
			require.Equal(t, i, rec.Trial)
		}
	}
}

func TestDeriveSeed(t *testing.T) {
	seen := map[int64]bool{}
	for s := uint64(0); s < 1000; s++ {
		v := deriveSeed(1, s)
		require.False(t, seen[v], "collision at stream %d", s)
		seen[v] = true
	}
	require.Equal(t, deriveSeed(5, 3), deriveSeed(5, 3))
	require.NotEqual(t, deriveSeed(5, 3), deriveSeed(6, 3))
}

func TestUniformInAndDrawSink(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := Bounds{Min: 5, Max: 10}
	hit := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := uniformIn(rng, b)
		require.GreaterOrEqual(t, v, 5)
		require.LessOrEqual(t, v, 10)
		hit[v] = true
	}
	require.Len(t, hit, 6, "both ends reachable")
	require.Equal(t, 4, uniformIn(rng, Bounds{Min: 4, Max: 4}))

	require.Equal(t, 0, drawSink(rng, 1))
	require.Equal(t, 1, drawSink(rng, 2))
	for i := 0; i < 100; i++ {
		s := drawSink(rng, 5)
		require.True(t, s >= 1 && s <= 4)
	}
}

func TestAnalyticsParse(t *testing.T) {
	a, err := ParseAnalytics("components", " MST ")
	require.NoError(t, err)
	require.Equal(t, AnalyticComponents|AnalyticMST, a)
	require.False(t, a.NeedsSink())
	require.Equal(t, "components|mst", a.String())

	a, err = ParseAnalytics("all")
	require.NoError(t, err)
	require.Equal(t, AllAnalytics, a)
	require.True(t, a.NeedsSink())

	_, err = ParseAnalytics("latency")
	require.ErrorIs(t, err, ErrUnknownAnalytic)
	require.Equal(t, "none", Analytics(0).String())
}

func TestComponentSizes(t *testing.T) {
	count, largest := componentSizes([]int{0, 1, 1, 2, 1, 0})
	require.Equal(t, 3, count)
	require.Equal(t, 3, largest)

	count, largest = componentSizes(nil)
	require.Zero(t, count)
	require.Zero(t, largest)
}

func TestParseMetric(t *testing.T) {
	for _, m := range Metrics() {
		got, err := ParseMetric(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
	require.Equal(t, AnalyticMST, MetricReachableNodes.Analytic())
	require.Equal(t, Analytics(0), MetricEdgesRemoved.Analytic())
	require.Equal(t, AnalyticComponents, MetricLargestComponent.Analytic())
	require.Equal(t, AnalyticMST, MetricSpanningForestWeight.Analytic())
	require.Equal(t, AnalyticMaxFlow, MetricMinCutLinks.Analytic())
	_, err := ParseMetric("jitter")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
