// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/linkfail/builder"
	"github.com/katalvlaran/linkfail/dfs"
	"github.com/katalvlaran/linkfail/dijkstra"
	"github.com/katalvlaran/linkfail/flow"
	"github.com/katalvlaran/linkfail/prim_kruskal"
	"github.com/katalvlaran/linkfail/topology"
)

// runTrial performs trial t on its own stream and topology copy:
//  1. obtain the topology (generate or restore)
//  2. pick the sink
//  3. apply link failures
//  4. run the requested analytics
func (r *Runner) runTrial(ctx context.Context, t int) (o outcome) {
	start := time.Now()
	o.rec.Trial = t
	rng := trialRNG(r.cfg.Seed, t)

	// 1–2) Topology and sink.
	var m *topology.Matrix
	if r.cfg.Randomize {
		params := r.drawParams(rng)
		g, err := builder.Generate(r.cfg.Policy, params,
			builder.WithRand(rng), builder.WithMaxWeight(r.cfg.MaxWeight))
		if err != nil {
			o.err = fmt.Errorf("simulation: trial %d: %w", t, err)
			return o
		}
		if r.cfg.KeepSnapshots {
			o.snap, o.hasSnap = topology.NewSnapshot(g), true
		}
		m = g
		o.rec.Sink = drawSink(rng, m.Len())
	} else {
		m = r.snapshot.Restore()
		o.rec.Sink = r.sink
	}
	o.rec.NodeCount = m.Len()
	o.rec.EdgesBefore = m.EdgeCount()

	// 3) Failures.
	o.rec.FailureProbability, o.rec.EdgesRemoved = r.cfg.Sampler.SampleAndApply(m, rng)

	// 4) Analytics.
	if err := r.analyze(ctx, m, &o.rec); err != nil {
		o.err = fmt.Errorf("simulation: trial %d: %w", t, err)
		return o
	}
	o.elapsed = time.Since(start)

	return o
}

// analyze fills the requested measurements of rec from the perturbed m.
func (r *Runner) analyze(ctx context.Context, m *topology.Matrix, rec *TrialRecord) error {
	a := r.cfg.Analytics

	if a.Has(AnalyticComponents) {
		labels, err := dfs.Labels(m)
		if err != nil {
			return err
		}
		rec.ComponentCount, rec.LargestComponent = componentSizes(labels)
	}
	if a.Has(AnalyticMST) {
		edges, w, err := prim_kruskal.MST(m)
		if err != nil {
			return err
		}
		rec.MSTEdges = len(edges)
		rec.ReachableNodes = len(edges) + 1
		rec.MSTWeight = w

		if _, rec.SpanningForestWeight, err = prim_kruskal.Kruskal(m); err != nil {
			return err
		}
	}
	if a.Has(AnalyticShortestPath) {
		p, err := dijkstra.ShortestPath(m, Source, rec.Sink)
		if err != nil {
			return err
		}
		rec.ShortestPathWeight = p.Weight
		rec.ShortestPathHops = p.Hops()
	}
	if a.Has(AnalyticMaxFlow) {
		// In-flight trials finish even when the run is cancelled.
		opts := flow.DefaultOptions()
		opts.Ctx = context.WithoutCancel(ctx)
		opts.Verbose = r.opts.flowVerbose
		opts.Logger = r.opts.logger.With().Int("trial", rec.Trial).Logger()
		v, res, err := flow.EdmondsKarp(m, Source, rec.Sink, opts)
		if err != nil {
			return err
		}
		rec.MaxFlow = v
		_, cut := res.MinCut()
		rec.MinCutLinks = len(cut)
	}

	return nil
}

// componentSizes returns the number of distinct labels and the size of the
// most populous one. Labels are dense indices starting at 0.
func componentSizes(labels []int) (count, largest int) {
	sizes := make([]int, 0, 8)
	for _, l := range labels {
		for l >= len(sizes) {
			sizes = append(sizes, 0)
		}
		sizes[l]++
	}
	for _, s := range sizes {
		if s > 0 {
			count++
		}
		largest = max(largest, s)
	}

	return count, largest
}

// drawParams draws the generator parameters of one randomized trial.
func (r *Runner) drawParams(rng *rand.Rand) builder.Params {
	switch r.cfg.Policy {
	case builder.PolicyClustered:
		c := uniformIn(rng, r.cfg.ClusterBounds)
		size := uniformIn(rng, r.cfg.ClusterSizeBounds)
		return builder.Params{Nodes: c * size, Clusters: c}
	case builder.PolicyConstant:
		n := uniformIn(rng, r.cfg.NodeBounds)
		hi := min(r.cfg.DegreeBounds.Max, n-1)
		lo := min(r.cfg.DegreeBounds.Min, hi)
		return builder.Params{Nodes: n, Degree: uniformIn(rng, Bounds{Min: lo, Max: hi})}
	default:
		return builder.Params{Nodes: uniformIn(rng, r.cfg.NodeBounds)}
	}
}
