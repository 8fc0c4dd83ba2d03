// SPDX-License-Identifier: MIT

// Package linkfail measures how networks degrade when links fail.
//
// 🚀 What is linkfail?
//
//	A deterministic, concurrent simulator that brings together:
//		• Topology generators: fully connected, degree-bounded, clustered ring
//		• Failure sampling: truncated-normal link failure probability
//		• Analytics: components, Prim MST, Dijkstra, Edmonds–Karp max flow
//		• An orchestrator: seeded, parallel, cancellable trial runs
//		• Reporting: summaries, JSON/CSV/snappy records, Prometheus metrics
//
// A trial builds (or restores) a weighted undirected topology, removes each
// link independently with probability p, then measures what is left.
// Records come back in trial order and are bit-identical for a given seed
// no matter how many workers run them.
//
// Under the hood:
//
//	topology/     — symmetric weighted adjacency matrix, snapshots, gonum bridge
//	builder/      — fully_connected, constant, clustered policies and Ring
//	failure/      — truncated-normal sampler, per-link removal
//	dfs/          — connected components
//	prim_kruskal/ — Prim from node 0 with early stop, Kruskal forest
//	dijkstra/     — single-pair shortest path
//	flow/         — Edmonds–Karp and Dinic max flow
//	simulation/   — Runner, trial records, per-metric series
//	stats/        — distribution summaries and run reports
//	metrics/      — Prometheus observer
//	config/       — Viper settings with validation and logger setup
//	export/       — record and report files
//	cmd/linkfail  — command-line front end
//
// Quick start:
//
//	cfg := simulation.DefaultConfig()
//	cfg.Policy = builder.PolicyConstant
//	cfg.Params = builder.Params{Nodes: 60, Degree: 8}
//	records, err := simulation.Run(ctx, cfg)
//
//	go install github.com/katalvlaran/linkfail/cmd/linkfail@latest
package linkfail
