// SPDX-License-Identifier: MIT

package simulation

import "math/rand"

// Stream identifiers. The construction stream builds the fixed-mode topology
// and its sink; trial t uses stream trialStreamBase+t.
const (
	constructionStream uint64 = 0
	trialStreamBase    uint64 = 1
)

// deriveSeed mixes a run seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer, so neighbouring trials get uncorrelated
// streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streamRNG returns the deterministic RNG of one stream of a run.
// A *rand.Rand is not goroutine-safe; each trial owns the one it gets.
func streamRNG(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// trialRNG returns the stream of trial t.
func trialRNG(seed int64, t int) *rand.Rand {
	return streamRNG(seed, trialStreamBase+uint64(t))
}

// uniformIn draws from the inclusive range b.
func uniformIn(rng *rand.Rand, b Bounds) int {
	if b.Max <= b.Min {
		return b.Min
	}
	return b.Min + rng.Intn(b.Max-b.Min+1)
}

// drawSink picks a sink uniformly in 1..n-1; 0 when n < 2.
func drawSink(rng *rand.Rand, n int) int {
	if n < 2 {
		return 0
	}
	return 1 + rng.Intn(n-1)
}
