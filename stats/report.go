// SPDX-License-Identifier: MIT

package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/linkfail/simulation"
)

// Group holds the records of one node count (randomized runs).
type Group struct {
	Nodes   int
	Records []simulation.TrialRecord
}

// GroupByNodes splits records by node count, ascending. Records keep their
// trial order inside a group.
func GroupByNodes(records []simulation.TrialRecord) []Group {
	idx := make(map[int]int)
	var groups []Group
	for _, rec := range records {
		i, ok := idx[rec.NodeCount]
		if !ok {
			i = len(groups)
			idx[rec.NodeCount] = i
			groups = append(groups, Group{Nodes: rec.NodeCount})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	sort.Slice(groups, func(a, b int) bool { return groups[a].Nodes < groups[b].Nodes })
	return groups
}

// GroupMeans is the per-node-count mean of every measured metric.
type GroupMeans struct {
	Nodes              int                `json:"nodes" yaml:"nodes"`
	Trials             int                `json:"trials" yaml:"trials"`
	FailureProbability float64            `json:"failure_probability" yaml:"failure_probability"`
	Means              map[string]float64 `json:"means" yaml:"means"`
}

// Report is the YAML/JSON summary of a run.
type Report struct {
	RunID     string       `json:"run_id" yaml:"run_id"`
	Mode      string       `json:"mode" yaml:"mode"`
	Policy    string       `json:"policy" yaml:"policy"`
	Analytics string       `json:"analytics" yaml:"analytics"`
	Seed      int64        `json:"seed" yaml:"seed"`
	Trials    int          `json:"trials" yaml:"trials"`
	Completed int          `json:"completed" yaml:"completed"`
	Cancelled bool         `json:"cancelled" yaml:"cancelled"`
	Failure   Summary      `json:"failure_probability" yaml:"failure_probability"`
	Metrics   []Summary    `json:"metrics" yaml:"metrics"`
	Groups    []GroupMeans `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// NewReport summarizes res. Metrics and Failure stay empty for a run with
// no records; Groups is filled in randomized mode only.
func NewReport(res *simulation.Result) Report {
	cfg := res.Config
	rep := Report{
		RunID:     res.RunID.String(),
		Mode:      res.Mode().String(),
		Policy:    cfg.Policy.String(),
		Analytics: cfg.Analytics.String(),
		Seed:      cfg.Seed,
		Trials:    cfg.Trials,
		Completed: len(res.Records),
		Cancelled: res.Cancelled,
	}
	if len(res.Records) == 0 {
		return rep
	}

	metrics := Metrics(cfg.Analytics)
	for _, m := range metrics {
		s, err := Summarize(res.Series(m))
		if err == nil {
			rep.Metrics = append(rep.Metrics, s)
		}
	}
	x := res.Series(simulation.MetricEdgesRemoved).X
	rep.Failure, _ = Describe("failure_probability", x, nil)

	if res.Mode() == simulation.ModeRandomized {
		for _, g := range GroupByNodes(res.Records) {
			gm := GroupMeans{Nodes: g.Nodes, Trials: len(g.Records), Means: make(map[string]float64, len(metrics))}
			p := make([]float64, len(g.Records))
			v := make([]float64, len(g.Records))
			for i, rec := range g.Records {
				p[i] = rec.FailureProbability
			}
			gm.FailureProbability = stat.Mean(p, nil)
			for _, m := range metrics {
				for i, rec := range g.Records {
					v[i] = m.Value(rec)
				}
				gm.Means[m.String()] = stat.Mean(v, nil)
			}
			rep.Groups = append(rep.Groups, gm)
		}
	}

	return rep
}
