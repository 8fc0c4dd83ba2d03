// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/linkfail/dijkstra"
	"github.com/katalvlaran/linkfail/topology"
)

// ExampleShortestPath finds the cheapest route on a triangle where the
// two-hop route beats the direct link.
//
//	0 —1— 1 —2— 2, plus 0 —5— 2
func ExampleShortestPath() {
	m, _ := topology.FromRows([][]int64{
		{0, 1, 5},
		{1, 0, 2},
		{5, 2, 0},
	})

	p, err := dijkstra.ShortestPath(m, 0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Nodes, p.Weight, p.Hops())
	// Output: [0 1 2] 3 2
}

// ExampleDistances prints distances from node 0; node 3 is isolated.
func ExampleDistances() {
	m, _ := topology.FromRows([][]int64{
		{0, 4, 1, 0},
		{4, 0, 2, 0},
		{1, 2, 0, 0},
		{0, 0, 0, 0},
	})

	dist, _ := dijkstra.Distances(m, 0)
	for v, d := range dist {
		if d == dijkstra.Unreachable {
			fmt.Printf("%d: unreachable\n", v)
			continue
		}
		fmt.Printf("%d: %d\n", v, d)
	}
	// Output:
	// 0: 0
	// 1: 3
	// 2: 1
	// 3: unreachable
}
