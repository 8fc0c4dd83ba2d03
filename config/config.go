// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/linkfail/builder"
	"github.com/katalvlaran/linkfail/simulation"
	"github.com/katalvlaran/linkfail/topology"
)

// EnvPrefix prefixes every environment override, e.g. LINKFAIL_TRIALS=500 or
// LINKFAIL_TOPOLOGY_POLICY=clustered.
const EnvPrefix = "LINKFAIL"

// ErrInvalid is returned when the merged settings fail validation.
var ErrInvalid = errors.New("config: invalid settings")

var validate = validator.New()

// Config manages linkfail settings using Viper: defaults, then an optional
// file, then LINKFAIL_* environment variables, then explicit Set calls.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults.
func NewConfig() *Config {
	v := viper.New()

	// Run parameters
	v.SetDefault("trials", 100)
	v.SetDefault("seed", 1)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("analytics", []string{"all"})
	v.SetDefault("keep_snapshots", false)

	// Topology parameters (nodes = 0 randomizes the size every trial)
	v.SetDefault("topology.policy", builder.NameFullyConnected)
	v.SetDefault("topology.nodes", 50)
	v.SetDefault("topology.degree", 0)
	v.SetDefault("topology.clusters", 0)
	v.SetDefault("topology.max_weight", topology.DefaultMaxWeight)

	// Randomized-size ranges
	v.SetDefault("random.nodes.min", simulation.DefaultNodeBounds.Min)
	v.SetDefault("random.nodes.max", simulation.DefaultNodeBounds.Max)
	v.SetDefault("random.degree.min", simulation.DefaultDegreeBounds.Min)
	v.SetDefault("random.degree.max", simulation.DefaultDegreeBounds.Max)
	v.SetDefault("random.clusters.min", simulation.DefaultClusterBounds.Min)
	v.SetDefault("random.clusters.max", simulation.DefaultClusterBounds.Max)
	v.SetDefault("random.cluster_size.min", simulation.DefaultClusterSizeBounds.Min)
	v.SetDefault("random.cluster_size.max", simulation.DefaultClusterSizeBounds.Max)

	// Failure sampler
	v.SetDefault("failure.mean", 0.5)
	v.SetDefault("failure.std_dev", 0.5)
	v.SetDefault("failure.lower", 0.0)
	v.SetDefault("failure.upper", 1.0)
	v.SetDefault("failure.fixed", -1.0)

	// Logging parameters
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.json", false)
	v.SetDefault("logging.flow_verbose", false)

	// Output parameters
	v.SetDefault("output.records", "")
	v.SetDefault("output.summary", "")
	v.SetDefault("output.metrics", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file (format by extension:
// yaml, json, toml, ...).
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: LoadFromFile(%s): %w", path, err)
	}
	return nil
}

// Set allows dynamic configuration changes (e.g. from command-line flags).
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Getters for commonly used values
func (c *Config) Trials() int             { return c.v.GetInt("trials") }
func (c *Config) Seed() int64             { return c.v.GetInt64("seed") }
func (c *Config) Workers() int            { return c.v.GetInt("workers") }
func (c *Config) LogLevel() string        { return c.v.GetString("logging.level") }
func (c *Config) LogJSON() bool           { return c.v.GetBool("logging.json") }
func (c *Config) FlowVerbose() bool       { return c.v.GetBool("logging.flow_verbose") }
func (c *Config) RecordsPath() string     { return c.v.GetString("output.records") }
func (c *Config) SummaryPath() string     { return c.v.GetString("output.summary") }
func (c *Config) MetricsPath() string     { return c.v.GetString("output.metrics") }
func (c *Config) ConfigFileUsed() string  { return c.v.ConfigFileUsed() }
func (c *Config) Randomized() bool        { return c.v.GetInt("topology.nodes") == 0 }
func (c *Config) PolicyName() string      { return c.v.GetString("topology.policy") }
func (c *Config) AnalyticNames() []string { return c.v.GetStringSlice("analytics") }

// CreateLogger creates a zerolog logger based on config, writing to w
// (os.Stderr when nil). Console output unless logging.json is set.
func (c *Config) CreateLogger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	if !c.LogJSON() {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "linkfail").Logger()
}

// Settings is the validated, typed view of a Config.
func (c *Config) Settings() (Settings, error) {
	var s Settings
	if err := c.v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := validate.Struct(s); err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return s, nil
}

// Simulation converts the settings into a simulation.Config. Structural
// checks (degree vs. nodes, cluster divisibility, bounds) are left to
// simulation.NewRunner.
func (c *Config) Simulation() (simulation.Config, error) {
	s, err := c.Settings()
	if err != nil {
		return simulation.Config{}, err
	}
	return s.Simulation()
}
