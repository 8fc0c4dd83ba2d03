package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkfail/builder"
	"github.com/katalvlaran/linkfail/simulation"
)

func TestDefaults(t *testing.T) {
	c := NewConfig()
	cfg, err := c.Simulation()
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Trials)
	assert.Equal(t, builder.PolicyFullyConnected, cfg.Policy)
	assert.Equal(t, 50, cfg.Params.Nodes)
	assert.False(t, cfg.Randomize)
	assert.Equal(t, simulation.AllAnalytics, cfg.Analytics)
	assert.Equal(t, simulation.DefaultNodeBounds, cfg.NodeBounds)
	assert.Equal(t, simulation.DefaultClusterSizeBounds, cfg.ClusterSizeBounds)
	require.NotNil(t, cfg.Sampler)
	_, fixed := cfg.Sampler.Fixed()
	assert.False(t, fixed)
	assert.Equal(t, 0.5, cfg.Sampler.Mean())

	_, err = simulation.NewRunner(cfg)
	require.NoError(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkfail.yaml")
	body := `
trials: 12
seed: 9
analytics: [components, max_flow]
topology:
  policy: clustered
  nodes: 0
random:
  clusters: {min: 2, max: 3}
  cluster_size: {min: 4, max: 6}
failure:
  fixed: 0.25
output:
  records: out.csv
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c := NewConfig()
	require.NoError(t, c.LoadFromFile(path))
	assert.Equal(t, path, c.ConfigFileUsed())
	assert.True(t, c.Randomized())
	assert.Equal(t, "out.csv", c.RecordsPath())

	cfg, err := c.Simulation()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Trials)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, builder.PolicyClustered, cfg.Policy)
	assert.True(t, cfg.Randomize)
	assert.Equal(t, simulation.AnalyticComponents|simulation.AnalyticMaxFlow, cfg.Analytics)
	assert.Equal(t, simulation.Bounds{Min: 2, Max: 3}, cfg.ClusterBounds)
	p, fixed := cfg.Sampler.Fixed()
	assert.True(t, fixed)
	assert.Equal(t, 0.25, p)

	require.Error(t, NewConfig().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LINKFAIL_TRIALS", "7")
	t.Setenv("LINKFAIL_TOPOLOGY_POLICY", "constant")
	t.Setenv("LINKFAIL_TOPOLOGY_DEGREE", "4")

	c := NewConfig()
	cfg, err := c.Simulation()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Trials)
	assert.Equal(t, builder.PolicyConstant, cfg.Policy)
	assert.Equal(t, 4, cfg.Params.Degree)

	// Explicit Set wins over the environment.
	c.Set("trials", 3)
	assert.Equal(t, 3, c.Trials())
}

func TestInvalidSettings(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero trials":       func(c *Config) { c.Set("trials", 0) },
		"bad policy":        func(c *Config) { c.Set("topology.policy", "mesh") },
		"bad analytic":      func(c *Config) { c.Set("analytics", []string{"latency"}) },
		"negative workers":  func(c *Config) { c.Set("workers", -2) },
		"inverted range":    func(c *Config) { c.Set("random.nodes.max", 3) },
		"bounds reversed":   func(c *Config) { c.Set("failure.upper", 0.0) },
		"bad log level":     func(c *Config) { c.Set("logging.level", "loud") },
		"weight below one":  func(c *Config) { c.Set("topology.max_weight", 0) },
		"fixed above one":   func(c *Config) { c.Set("failure.fixed", 1.5) },
		"zero std dev":      func(c *Config) { c.Set("failure.std_dev", 0.0) },
		"negative clusters": func(c *Config) { c.Set("topology.clusters", -1) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := NewConfig()
			mutate(c)
			_, err := c.Simulation()
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestCreateLogger(t *testing.T) {
	var buf bytes.Buffer
	c := NewConfig()
	c.Set("logging.json", true)
	c.Set("logging.level", "warn")

	log := c.CreateLogger(&buf)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"service":"linkfail"`)

	buf.Reset()
	c.Set("logging.json", false)
	c.Set("logging.level", "nonsense")
	console := c.CreateLogger(&buf)
	console.Info().Msg("console")
	assert.Contains(t, buf.String(), "console")
}
