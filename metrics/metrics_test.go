package metrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkfail/builder"
	"github.com/katalvlaran/linkfail/simulation"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r.registry)
	require.NotNil(t, r.TrialsTotal)
	require.NotNil(t, r.RunsTotal)
	require.Same(t, r.registry, r.GetPrometheusRegistry())

	// Two registries never collide on registration.
	require.NotPanics(t, func() { NewRegistry() })
}

func TestTrialDone_RespectsAnalytics(t *testing.T) {
	r := NewRegistry()
	r.RunStarted(simulation.Config{Trials: 2, Analytics: simulation.AnalyticComponents})

	rec := simulation.TrialRecord{NodeCount: 10, Sink: 3, EdgesRemoved: 4, ComponentCount: 2}
	r.TrialDone(rec, 5*time.Millisecond)
	r.TrialDone(rec, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.TrialsTotal))
	assert.Equal(t, 8.0, testutil.ToFloat64(r.EdgesRemovedTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.RunTrials))
	assert.Zero(t, testutil.ToFloat64(r.ShortestPathMissing), "shortest path not measured")
}

func TestRunDone_Status(t *testing.T) {
	r := NewRegistry()
	r.RunDone(&simulation.Result{Records: make([]simulation.TrialRecord, 3)}, time.Second, nil)
	r.RunDone(&simulation.Result{Cancelled: true}, time.Second, context.Canceled)
	r.RunDone(&simulation.Result{}, time.Second, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("cancelled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("failed")))
	assert.Zero(t, testutil.ToFloat64(r.LastRunSize))
}

func TestRegistry_AsObserver(t *testing.T) {
	r := NewRegistry()
	cfg := simulation.DefaultConfig()
	cfg.Params = builder.Params{Nodes: 8}
	cfg.Trials = 6

	_, err := simulation.Run(context.Background(), cfg, simulation.WithObserver(r))
	require.NoError(t, err)
	assert.Equal(t, 6.0, testutil.ToFloat64(r.TrialsTotal))
	assert.Equal(t, 6.0, testutil.ToFloat64(r.LastRunSize))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("completed")))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.TrialsTotal.Add(3)

	path := filepath.Join(t.TempDir(), "linkfail.prom")
	require.NoError(t, r.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "linkfail_trials_total 3"))

	require.ErrorIs(t, r.WriteTextfile(""), ErrNoPath)
}
