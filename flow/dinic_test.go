package flow_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkfail/builder"
	"github.com/katalvlaran/linkfail/failure"
	"github.com/katalvlaran/linkfail/flow"
)

func TestDinic_TwoRoutes(t *testing.T) {
	m, err := builder.Ring(4, builder.WithConstantWeight(3))
	require.NoError(t, err)

	mf, res, err := flow.Dinic(m, 0, 2, flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, int64(6), mf)
	require.Equal(t, mf, res.Value())

	_, _, err = flow.Dinic(m, 2, 2, flow.DefaultOptions())
	require.ErrorIs(t, err, flow.ErrInvalidInput)
}

func TestDinic_LevelRebuildInterval(t *testing.T) {
	m, err := builder.FullyConnected(12, builder.WithSeed(3))
	require.NoError(t, err)

	want, _, err := flow.Dinic(m, 0, 11, flow.DefaultOptions())
	require.NoError(t, err)

	opts := flow.DefaultOptions()
	opts.LevelRebuildInterval = 1
	got, _, err := flow.Dinic(m, 0, 11, opts)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestMaxFlowAgreement uses property-based testing to check that Dinic and
// Edmonds–Karp agree on randomly failed topologies.
func TestMaxFlowAgreement(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)
	sampler := failure.NewSampler()

	properties.Property("dinic equals edmonds-karp", prop.ForAll(
		func(n, sinkSeed int, seed int64) bool {
			m, err := builder.FullyConnected(n, builder.WithSeed(seed))
			if err != nil {
				return false
			}
			rng := rand.New(rand.NewSource(seed))
			sampler.SampleAndApply(m, rng)
			sink := 1 + sinkSeed%(n-1)

			ek, _, err1 := flow.EdmondsKarp(m, 0, sink, flow.DefaultOptions())
			dn, _, err2 := flow.Dinic(m, 0, sink, flow.DefaultOptions())
			return err1 == nil && err2 == nil && ek == dn
		},
		gen.IntRange(2, 25),
		gen.IntRange(0, 1000),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
