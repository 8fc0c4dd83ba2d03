// SPDX-License-Identifier: MIT

package flow

import (
	"math"

	"github.com/katalvlaran/linkfail/topology"
)

// Dinic computes the maximum flow from `source` to `sink` using Dinic’s
// algorithm (level graph + blocking flows). It returns the same value as
// EdmondsKarp and is used to cross-check it.
//
// Steps:
//  1. Validate arguments, normalize options.
//  2. Repeat until the sink is unreachable:
//     a. Check for cancellation.
//     b. BFS to build the level graph.
//     c. DFS-based blocking flow with per-node iterators, optionally
//     rebuilding levels every LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(N² · E) in general.
//	Memory: O(N²) for the residual matrix.
func Dinic(
	m *topology.Matrix,
	source, sink int,
	opts FlowOptions,
) (maxFlow int64, residual *Residual, err error) {
	// 1) Validate and normalize
	if err = validate(methodDinic, m, source, sink); err != nil {
		return 0, nil, err
	}
	opts.normalize()
	ctx := opts.Ctx

	residual = newResidual(m, source, sink)
	n := m.Len()
	level := make([]int, n)
	iter := make([]int, n)

	// 2) Main loop: level graph + blocking flows
	augmentCount := 0
	for {
		// 2a) Cancellation check before BFS
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		// 2b) BFS to compute levels
		if !buildLevels(residual, source, sink, level) {
			break
		}
		for i := range iter {
			iter[i] = 0
		}

		// 2c) Blocking flow
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			pushed := dinicDFS(residual, source, sink, math.MaxInt64, level, iter)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.Verbose {
				opts.Logger.Debug().
					Str("method", methodDinic).
					Int("augmentation", augmentCount).
					Int64("pushed", pushed).
					Msg("blocking flow step")
			}
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, residual, nil
}

// buildLevels assigns BFS distances from source over arcs with spare
// capacity and reports whether the sink is reachable.
func buildLevels(res *Residual, source, sink int, level []int) bool {
	n := res.Len()
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for v := 0; v < n; v++ {
			if level[v] < 0 && res.r[u][v] > 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level[sink] >= 0
}

// dinicDFS pushes up to limit units from u towards sink along level-increasing
// arcs. iter[u] remembers the next column to try so dead arcs are not revisited.
// Recursion depth is bounded by the sink's level (< N).
func dinicDFS(res *Residual, u, sink int, limit int64, level, iter []int) int64 {
	if u == sink {
		return limit
	}
	n := res.Len()
	for ; iter[u] < n; iter[u]++ {
		v := iter[u]
		c := res.r[u][v]
		if c <= 0 || level[v] != level[u]+1 {
			continue
		}
		if c > limit {
			c = limit
		}
		if pushed := dinicDFS(res, v, sink, c, level, iter); pushed > 0 {
			res.r[u][v] -= pushed
			res.r[v][u] += pushed
			return pushed
		}
	}

	return 0
}
