package flow_test

import (
	"fmt"

	"github.com/katalvlaran/linkfail/flow"
	"github.com/katalvlaran/linkfail/topology"
)

// ExampleEdmondsKarp shows max-flow on a two-route network.
//
//	0 –3– 1 –2– 3
//	0 –2– 2 –3– 3
//
// Each route is limited by its weaker link: 2 + 2 = 4.
func ExampleEdmondsKarp() {
	m, _ := topology.FromRows([][]int64{
		{0, 3, 2, 0},
		{3, 0, 0, 2},
		{2, 0, 0, 3},
		{0, 2, 3, 0},
	})

	maxFlow, res, err := flow.EdmondsKarp(m, 0, 3, flow.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_, cut := res.MinCut()
	fmt.Println(maxFlow, cut)
	// Output: 4 [0-2(2) 1-3(2)]
}
