// SPDX-License-Identifier: MIT

package simulation

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/linkfail/builder"
	"github.com/katalvlaran/linkfail/failure"
	"github.com/katalvlaran/linkfail/topology"
)

// ErrInvalidConfig is returned by NewRunner for a configuration that cannot
// run. It wraps topology.ErrInvalidParameters.
var ErrInvalidConfig = fmt.Errorf("simulation: invalid config: %w", topology.ErrInvalidParameters)

// ErrUnknownAnalytic is returned by ParseAnalytics for an unrecognised name.
var ErrUnknownAnalytic = fmt.Errorf("simulation: unknown analytic: %w", ErrInvalidConfig)

// Analytics is a bit set selecting which measurements a trial performs.
type Analytics uint8

const (
	// AnalyticComponents counts connected components.
	AnalyticComponents Analytics = 1 << iota
	// AnalyticMST builds the Prim tree rooted at node 0.
	AnalyticMST
	// AnalyticShortestPath runs Dijkstra from node 0 to the sink.
	AnalyticShortestPath
	// AnalyticMaxFlow runs Edmonds–Karp from node 0 to the sink.
	AnalyticMaxFlow

	// AllAnalytics selects every measurement.
	AllAnalytics = AnalyticComponents | AnalyticMST | AnalyticShortestPath | AnalyticMaxFlow
)

var analyticNames = []struct {
	bit  Analytics
	name string
}{
	{AnalyticComponents, "components"},
	{AnalyticMST, "mst"},
	{AnalyticShortestPath, "shortest_path"},
	{AnalyticMaxFlow, "max_flow"},
}

// Has reports whether every bit of b is set in a.
func (a Analytics) Has(b Analytics) bool { return a&b == b }

// NeedsSink reports whether a contains an analytic measured towards the sink.
func (a Analytics) NeedsSink() bool {
	return a&(AnalyticShortestPath|AnalyticMaxFlow) != 0
}

// String renders a as a '|'-separated list, e.g. "components|max_flow".
func (a Analytics) String() string {
	if a == 0 {
		return "none"
	}
	parts := make([]string, 0, len(analyticNames))
	for _, an := range analyticNames {
		if a.Has(an.bit) {
			parts = append(parts, an.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseAnalytics folds analytic names into a bit set. The name "all" selects
// AllAnalytics. Names are case-insensitive.
func ParseAnalytics(names ...string) (Analytics, error) {
	var a Analytics
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "all" {
			a |= AllAnalytics
			continue
		}
		found := false
		for _, an := range analyticNames {
			if an.name == name {
				a |= an.bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("ParseAnalytics(%q): %w", raw, ErrUnknownAnalytic)
		}
	}
	return a, nil
}

// Mode tells a consumer how to present a run: fixed-size runs are 2D
// (failure probability vs. metric), randomized runs add node count as a
// third axis.
type Mode int

const (
	ModeFixed Mode = iota
	ModeRandomized
)

func (m Mode) String() string {
	if m == ModeRandomized {
		return "randomized"
	}
	return "fixed"
}

// Bounds is an inclusive integer range [Min, Max].
type Bounds struct {
	Min int
	Max int
}

// valid reports Min ≤ Max and Min ≥ floor.
func (b Bounds) valid(floor int) bool { return b.Min >= floor && b.Max >= b.Min }

// Default ranges of randomized-size mode.
var (
	DefaultNodeBounds        = Bounds{Min: 25, Max: 150}
	DefaultDegreeBounds      = Bounds{Min: 24, Max: 149}
	DefaultClusterBounds     = Bounds{Min: 5, Max: 15}
	DefaultClusterSizeBounds = Bounds{Min: 5, Max: 10}
)

// Config selects what a run does.
//
// In fixed mode (Randomize false) Params describes the single topology,
// built once from the construction stream and restored from its Snapshot at
// the start of every trial. In randomized mode every trial draws its own
// parameters from the Bounds and builds a fresh topology:
//   - fully_connected: Nodes ~ U[NodeBounds]
//   - constant: Nodes ~ U[NodeBounds], Degree ~ U[DegreeBounds] clamped to [1, Nodes-1]
//   - clustered: Clusters ~ U[ClusterBounds], Nodes = Clusters × U[ClusterSizeBounds]
type Config struct {
	Trials int
	Policy builder.Policy
	Params builder.Params
	// Topology, when set in fixed mode, replaces Policy and Params. It is
	// copied into the run snapshot and never mutated.
	Topology *topology.Matrix

	Randomize         bool
	NodeBounds        Bounds
	DegreeBounds      Bounds
	ClusterBounds     Bounds
	ClusterSizeBounds Bounds

	Analytics Analytics
	Seed      int64
	// Workers is the number of concurrent trial workers (0 = runtime.NumCPU()).
	Workers int
	// MaxWeight bounds generated link weights (0 = topology.DefaultMaxWeight).
	MaxWeight int64
	// Sampler draws the per-trial failure probability (nil = failure.NewSampler()).
	Sampler *failure.Sampler
	// KeepSnapshots retains the pre-failure topology of every randomized trial.
	KeepSnapshots bool
}

// DefaultConfig returns a fixed-mode run of 100 trials over a 50-node fully
// connected topology with every analytic enabled.
func DefaultConfig() Config {
	return Config{
		Trials:            100,
		Policy:            builder.PolicyFullyConnected,
		Params:            builder.Params{Nodes: 50},
		NodeBounds:        DefaultNodeBounds,
		DegreeBounds:      DefaultDegreeBounds,
		ClusterBounds:     DefaultClusterBounds,
		ClusterSizeBounds: DefaultClusterSizeBounds,
		Analytics:         AllAnalytics,
		Seed:              1,
		Workers:           runtime.NumCPU(),
		MaxWeight:         topology.DefaultMaxWeight,
	}
}

// Mode reports the presentation mode implied by c.
func (c Config) Mode() Mode {
	if c.Randomize {
		return ModeRandomized
	}
	return ModeFixed
}

// TrialRecord is the outcome of one trial. Fields of analytics that were not
// requested stay zero.
type TrialRecord struct {
	Trial              int     `json:"trial" yaml:"trial"`
	FailureProbability float64 `json:"failure_probability" yaml:"failure_probability"`
	NodeCount          int     `json:"node_count" yaml:"node_count"`
	Sink               int     `json:"sink" yaml:"sink"`
	EdgesBefore        int     `json:"edges_before" yaml:"edges_before"`
	EdgesRemoved       int     `json:"edges_removed" yaml:"edges_removed"`
	ComponentCount     int     `json:"component_count" yaml:"component_count"`
	MSTEdges           int     `json:"mst_edges" yaml:"mst_edges"`
	MSTWeight          int64   `json:"mst_weight" yaml:"mst_weight"`
	ReachableNodes     int     `json:"reachable_nodes" yaml:"reachable_nodes"`
	ShortestPathWeight int64   `json:"shortest_path_weight" yaml:"shortest_path_weight"`
	ShortestPathHops   int     `json:"shortest_path_hops" yaml:"shortest_path_hops"`
	MaxFlow            int64   `json:"max_flow" yaml:"max_flow"`

	// LargestComponent is the node count of the biggest component.
	LargestComponent int `json:"largest_component" yaml:"largest_component"`
	// SpanningForestWeight covers every component, not only the source's.
	SpanningForestWeight int64 `json:"spanning_forest_weight" yaml:"spanning_forest_weight"`
	// MinCutLinks is the number of links crossing a minimum source/sink cut.
	MinCutLinks int `json:"min_cut_links" yaml:"min_cut_links"`
}

// Result is everything a run produced.
//
// Records is ordered by trial index and always a contiguous prefix
// 0..len(Records)-1, also after cancellation or an aborted trial.
// Snapshots holds the pre-failure topologies: exactly one in fixed mode, one
// per record in randomized mode when KeepSnapshots is set, none otherwise.
type Result struct {
	RunID     uuid.UUID
	Config    Config
	Records   []TrialRecord
	Snapshots []topology.Snapshot
	Cancelled bool
}

// Mode reports the presentation mode of the run.
func (r *Result) Mode() Mode { return r.Config.Mode() }
