// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linkfail/topology"
)

const (
	methodEdmondsKarp = "EdmondsKarp"
	methodDinic       = "Dinic"
)

// wrap prefixes an error with the method name.
func wrap(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow pushed out of source
//   - residual: residual network after the flow
//   - err: ErrNilGraph, ErrSourceNotFound, ErrSinkNotFound or ErrSameEndpoints
//     (all wrap ErrInvalidInput), or the context error on cancellation
//     (maxFlow then holds the flow pushed so far and residual is nil).
//
// Each augmentation raises the flow by a positive integer bounded by total
// capacity, so the loop always terminates.
//
// Complexity: O(N · E²) augmentations bound, O(N²) per BFS on a matrix.
// Memory:     O(N²) for the residual matrix.
func EdmondsKarp(
	m *topology.Matrix,
	source, sink int,
	opts FlowOptions,
) (maxFlow int64, residual *Residual, err error) {
	// 1) Validate and normalize
	if err = validate(methodEdmondsKarp, m, source, sink); err != nil {
		return 0, nil, err
	}
	opts.normalize()
	ctx := opts.Ctx

	// 2) Build residual network
	residual = newResidual(m, source, sink)
	parent := make([]int, m.Len())

	// 3) Main loop: find BFS augmenting paths until none remain
	for augmentations := 0; ; augmentations++ {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		path, bottle := bfsAugmentingPath(residual, source, sink, parent)
		if bottle <= 0 {
			break
		}
		if opts.Verbose {
			opts.Logger.Debug().
				Str("method", methodEdmondsKarp).
				Int("augmentation", augmentations+1).
				Ints("path", path).
				Int64("bottleneck", bottle).
				Msg("augmenting path")
		}

		// 4) Augment along the path
		residual.augment(path, bottle)
		maxFlow += bottle
	}

	return maxFlow, residual, nil
}

// bfsAugmentingPath finds the shortest (fewest-arcs) path in the residual
// network from source→sink with positive capacity, scanning neighbors in
// ascending index order. It returns the path and its bottleneck, or
// (nil, 0) if the sink is unreachable.
func bfsAugmentingPath(res *Residual, source, sink int, parent []int) ([]int, int64) {
	n := res.Len()
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source

	queue := make([]int, 0, n)
	queue = append(queue, source)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for v := 0; v < n; v++ {
			if parent[v] != -1 || res.r[u][v] <= 0 {
				continue
			}
			parent[v] = u
			if v == sink {
				return tracePath(res, parent, source, sink)
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}

// tracePath rebuilds the source→sink path from parent links and computes
// its bottleneck.
func tracePath(res *Residual, parent []int, source, sink int) ([]int, int64) {
	bottle := int64(math.MaxInt64)
	path := []int{sink}
	for cur := sink; cur != source; cur = parent[cur] {
		p := parent[cur]
		if c := res.r[p][cur]; c < bottle {
			bottle = c
		}
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, bottle
}
