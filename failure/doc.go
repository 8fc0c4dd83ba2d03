// SPDX-License-Identifier: MIT

// Package failure models random link failure. A Sampler draws one failure
// probability per trial from a normal distribution truncated to [0,1]
// (μ = 0.5, σ = 0.5 by default) and then removes every link of a topology
// independently with that probability.
//
// The draw uses the inverse CDF of gonum's distuv.Normal restricted to the
// truncation interval, so every probability in the interval is reachable and
// the distribution is symmetric around 0.5 with the default parameters.
package failure
