package simulation_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/linkfail/builder"
	"github.com/katalvlaran/linkfail/failure"
	"github.com/katalvlaran/linkfail/simulation"
)

// ExampleRun measures a 4-node unit ring with no failures: one component,
// a 3-link tree of weight 3, and two disjoint routes to any sink.
func ExampleRun() {
	ring, _ := builder.Ring(4, builder.WithConstantWeight(1))

	cfg := simulation.DefaultConfig()
	cfg.Topology = ring
	cfg.Trials = 2
	cfg.Sampler = failure.NewSampler(failure.WithFixedProbability(0))

	recs, err := simulation.Run(context.Background(), cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, rec := range recs {
		fmt.Println(rec.Trial, rec.ComponentCount, rec.MSTEdges, rec.MSTWeight, rec.MaxFlow)
	}
	// Output:
	// 0 1 3 3 2
	// 1 1 3 3 2
}
