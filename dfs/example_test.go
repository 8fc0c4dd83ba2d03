package dfs_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/linkfail/dfs"
	"github.com/katalvlaran/linkfail/topology"
)

func newRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// ExampleDFS demonstrates a depth-first traversal (post-order) on a small tree.
//
//	  0
//	 / \
//	1   2
//	   / \
//	  3   4
func ExampleDFS() {
	m, _ := topology.New(5)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {2, 3}, {2, 4}} {
		_ = m.SetEdge(e[0], e[1], 1)
	}

	res, err := dfs.DFS(m, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output: [1 3 4 2 0]
}

// ExampleComponents counts islands after two links of a ring fail.
func ExampleComponents() {
	m, _ := topology.New(6)
	for i := 0; i < 6; i++ {
		_ = m.SetEdge(i, (i+1)%6, 1)
	}
	_, _ = m.RemoveEdge(0, 1)
	_, _ = m.RemoveEdge(3, 4)

	fmt.Println(dfs.Components(m))
	// Output: 2
}
