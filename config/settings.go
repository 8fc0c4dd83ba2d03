// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/linkfail/builder"
	"github.com/katalvlaran/linkfail/failure"
	"github.com/katalvlaran/linkfail/simulation"
)

// Range is an inclusive integer range as written in a config file.
type Range struct {
	Min int `mapstructure:"min" validate:"gte=1"`
	Max int `mapstructure:"max" validate:"gtefield=Min"`
}

func (r Range) bounds() simulation.Bounds { return simulation.Bounds{Min: r.Min, Max: r.Max} }

// Settings mirrors the configuration keys.
type Settings struct {
	Trials        int      `mapstructure:"trials" validate:"gte=1"`
	Seed          int64    `mapstructure:"seed"`
	Workers       int      `mapstructure:"workers" validate:"gte=0"`
	Analytics     []string `mapstructure:"analytics" validate:"dive,oneof=all components mst shortest_path max_flow"`
	KeepSnapshots bool     `mapstructure:"keep_snapshots"`

	Topology struct {
		Policy    string `mapstructure:"policy" validate:"oneof=fully_connected constant clustered"`
		Nodes     int    `mapstructure:"nodes" validate:"gte=0"`
		Degree    int    `mapstructure:"degree" validate:"gte=0"`
		Clusters  int    `mapstructure:"clusters" validate:"gte=0"`
		MaxWeight int64  `mapstructure:"max_weight" validate:"gte=1"`
	} `mapstructure:"topology"`

	Random struct {
		Nodes       Range `mapstructure:"nodes"`
		Degree      Range `mapstructure:"degree"`
		Clusters    Range `mapstructure:"clusters"`
		ClusterSize Range `mapstructure:"cluster_size"`
	} `mapstructure:"random"`

	Failure struct {
		Mean   float64 `mapstructure:"mean" validate:"gte=0,lte=1"`
		StdDev float64 `mapstructure:"std_dev" validate:"gt=0"`
		Lower  float64 `mapstructure:"lower" validate:"gte=0,lte=1"`
		Upper  float64 `mapstructure:"upper" validate:"gtfield=Lower,lte=1"`
		// Fixed forces the failure probability when in [0,1]; negative disables.
		Fixed float64 `mapstructure:"fixed" validate:"lte=1"`
	} `mapstructure:"failure"`

	Logging struct {
		Level       string `mapstructure:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
		JSON        bool   `mapstructure:"json"`
		FlowVerbose bool   `mapstructure:"flow_verbose"`
	} `mapstructure:"logging"`

	Output struct {
		Records string `mapstructure:"records"`
		Summary string `mapstructure:"summary"`
		Metrics string `mapstructure:"metrics"`
	} `mapstructure:"output"`
}

// Sampler builds the failure sampler described by the settings.
func (s Settings) Sampler() *failure.Sampler {
	f := s.Failure
	if f.Fixed >= 0 {
		return failure.NewSampler(failure.WithFixedProbability(f.Fixed))
	}
	return failure.NewSampler(
		failure.WithMean(f.Mean),
		failure.WithStdDev(f.StdDev),
		failure.WithBounds(f.Lower, f.Upper),
	)
}

// Simulation converts validated settings into a simulation.Config.
// topology.nodes = 0 selects randomized-size mode.
func (s Settings) Simulation() (simulation.Config, error) {
	policy, err := builder.ParsePolicy(s.Topology.Policy)
	if err != nil {
		return simulation.Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	analytics, err := simulation.ParseAnalytics(s.Analytics...)
	if err != nil {
		return simulation.Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return simulation.Config{
		Trials: s.Trials,
		Policy: policy,
		Params: builder.Params{
			Nodes:    s.Topology.Nodes,
			Degree:   s.Topology.Degree,
			Clusters: s.Topology.Clusters,
		},
		Randomize:         s.Topology.Nodes == 0,
		NodeBounds:        s.Random.Nodes.bounds(),
		DegreeBounds:      s.Random.Degree.bounds(),
		ClusterBounds:     s.Random.Clusters.bounds(),
		ClusterSizeBounds: s.Random.ClusterSize.bounds(),
		Analytics:         analytics,
		Seed:              s.Seed,
		Workers:           s.Workers,
		MaxWeight:         s.Topology.MaxWeight,
		Sampler:           s.Sampler(),
		KeepSnapshots:     s.KeepSnapshots,
	}, nil
}
