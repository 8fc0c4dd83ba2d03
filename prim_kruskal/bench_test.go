package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/linkfail/builder"
	"github.com/katalvlaran/linkfail/prim_kruskal"
)

// BenchmarkKruskal measures performance on a 150-node degree-bounded topology.
func BenchmarkKruskal(b *testing.B) {
	m, _ := builder.Constant(150, 24, builder.WithSeed(1)) // pre-build once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(m)
	}
}

// BenchmarkPrim measures performance on the same topology, rooted at node 0.
func BenchmarkPrim(b *testing.B) {
	m, _ := builder.Constant(150, 24, builder.WithSeed(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.MST(m)
	}
}
