// SPDX-License-Identifier: MIT

// Package export serializes trial records for replay and plotting.
//
// Record files follow the TrialRecord field names (failure_probability,
// node_count, component_count, max_flow, shortest_path_weight, ...):
//
//   - .json     indented JSON Document (run identity + records)
//   - .json.sz  the same JSON in the snappy framing format
//   - .csv      header row plus one row per record
//
// Run summaries (stats.Report) are written as YAML.
package export
