// SPDX-License-Identifier: MIT

// Package stats turns trial records into distributions: per-metric
// summaries with quantiles and the correlation against failure probability,
// fixed-width histograms, grouping by node count for randomized runs, and a
// serializable run Report.
//
// Numerics come from gonum's stat and floats packages.
package stats
