// SPDX-License-Identifier: MIT

// Package metrics exposes run and trial measurements as Prometheus metrics.
//
// A Registry owns a private prometheus.Registry and plugs into a run as a
// simulation.Observer. There is no HTTP listener: WriteTextfile dumps the
// metrics in the text exposition format for the node-exporter textfile
// collector.
package metrics
