// SPDX-License-Identifier: MIT

// Package config loads linkfail settings with Viper and validates them with
// go-playground/validator.
//
// Precedence, lowest first: built-in defaults, a config file
// (LoadFromFile), LINKFAIL_* environment variables (nested keys use '_',
// e.g. LINKFAIL_TOPOLOGY_NODES), explicit Set calls.
//
// Example file:
//
//	trials: 500
//	seed: 7
//	analytics: [components, mst, max_flow]
//	topology:
//	  policy: clustered
//	  nodes: 0        # randomize size every trial
//	random:
//	  clusters: {min: 5, max: 15}
//	  cluster_size: {min: 5, max: 10}
//	output:
//	  records: run.json.sz
//	  summary: run.yaml
package config
