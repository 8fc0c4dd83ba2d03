package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/linkfail/prim_kruskal"
	"github.com/katalvlaran/linkfail/topology"
)

// ExampleKruskal demonstrates Kruskal’s algorithm on a triangle.
// Edges: 0–1 (1), 1–2 (2), 0–2 (4). The MST is {0–1, 1–2} with total weight 3.
func ExampleKruskal() {
	m, _ := topology.FromRows([][]int64{
		{0, 1, 4},
		{1, 0, 2},
		{4, 2, 0},
	})

	edges, total, err := prim_kruskal.Kruskal(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(total, edges)
	// Output: 3 [0-1(1) 1-2(2)]
}

// ExampleMST shows truncation: node 3 is cut off, so the tree from node 0
// covers three nodes only.
func ExampleMST() {
	m, _ := topology.FromRows([][]int64{
		{0, 5, 1, 0},
		{5, 0, 2, 0},
		{1, 2, 0, 0},
		{0, 0, 0, 0},
	})

	edges, total, _ := prim_kruskal.MST(m)
	fmt.Println(edges, total, "reachable:", len(edges)+1)
	// Output: [0-2(1) 2-1(2)] 3 reachable: 3
}
