package builder_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/linkfail/builder"
)

// TestGeneratorInvariants uses property-based testing to verify structural
// invariants that must hold for any valid parameter set and seed.
func TestGeneratorInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Property 1: Constant never exceeds the degree bound and stays symmetric.
	properties.Property("constant respects degree bound", prop.ForAll(
		func(n, kSeed int, seed int64) bool {
			k := 1 + kSeed%(n-1)
			m, err := builder.Constant(n, k, builder.WithSeed(seed))
			if err != nil || m.Validate() != nil {
				return false
			}
			for i := 0; i < n; i++ {
				if m.Degree(i) > k {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 60),
		gen.IntRange(0, 1000),
		gen.Int64(),
	))

	// Property 2: every clustered local hangs off its centroid and every
	// centroid reaches the next centroid.
	properties.Property("clustered star and ring", prop.ForAll(
		func(c, size int, seed int64) bool {
			n := c * size
			m, err := builder.Clustered(n, c, builder.WithSeed(seed))
			if err != nil || m.Validate() != nil {
				return false
			}
			for q := 0; q < c; q++ {
				centroid := q * size
				next := (centroid + size) % n
				if next != centroid && !m.HasEdge(centroid, next) {
					return false
				}
				for l := 1; l < size; l++ {
					if !m.HasEdge(centroid, centroid+l) {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 12),
		gen.IntRange(1, 10),
		gen.Int64(),
	))

	// Property 3: fully connected has exactly n(n-1)/2 edges.
	properties.Property("fully connected edge count", prop.ForAll(
		func(n int, seed int64) bool {
			m, err := builder.FullyConnected(n, builder.WithSeed(seed))
			return err == nil && m.EdgeCount() == n*(n-1)/2
		},
		gen.IntRange(1, 40),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
