// SPDX-License-Identifier: MIT

// Package simulation runs repeated link-failure trials over generated
// topologies and collects one TrialRecord per trial.
//
// A trial is:
//
//  1. obtain a private topology: restore the run snapshot (fixed mode) or
//     generate a fresh one from parameters drawn within Config bounds
//     (randomized mode);
//  2. choose the sink: source is always node 0, the sink is uniform in
//     1..N-1, drawn once per run in fixed mode and every trial otherwise;
//  3. thin the links with one failure probability drawn by failure.Sampler;
//  4. run the requested analytics (components, Prim tree from node 0,
//     Dijkstra 0→sink, Edmonds–Karp 0→sink);
//  5. record.
//
// # Determinism
//
// Every trial t draws from its own stream derived from (Config.Seed, t), and
// the fixed-mode topology comes from a separate construction stream. The
// records of a run therefore depend only on the Config, never on
// Config.Workers or scheduling.
//
// # Concurrency
//
// Trials run on an errgroup of Config.Workers goroutines. A single collector
// appends records in trial order; Observers are called from it.
//
// # Cancellation and errors
//
// Cancelling the context stops dispatch; running trials finish and the
// contiguous prefix of records is kept (Result.Cancelled, ctx.Err()).
// Any analytic error aborts the run with the records before the failing
// trial. Since the sink is chosen internally and validated up front, such
// an error points at a configuration or generator bug.
package simulation
