package flow_test

import (
	"testing"

	"github.com/katalvlaran/linkfail/builder"
	"github.com/katalvlaran/linkfail/flow"
)

// BenchmarkEdmondsKarp measures max-flow on a 150-node fully connected topology.
func BenchmarkEdmondsKarp(b *testing.B) {
	m, _ := builder.FullyConnected(150, builder.WithSeed(1))
	opts := flow.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = flow.EdmondsKarp(m, 0, 149, opts)
	}
}

// BenchmarkDinic measures the same network with Dinic.
func BenchmarkDinic(b *testing.B) {
	m, _ := builder.FullyConnected(150, builder.WithSeed(1))
	opts := flow.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = flow.Dinic(m, 0, 149, opts)
	}
}
