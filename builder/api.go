// SPDX-License-Identifier: MIT
// Package: linkfail/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One dispatcher: Generate(policy, params, opts...). The policy set is closed
//     (tagged variant), each policy maps onto one generator implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed ⇒ identical matrices.
//   - Safety: never panic; return ErrInvalidParameters-wrapped errors.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linkfail/topology"
)

// Policy selects one of the generation policies.
type Policy int

const (
	// PolicyFullyConnected links every pair of nodes.
	PolicyFullyConnected Policy = iota
	// PolicyConstant links every node to at most Params.Degree others.
	PolicyConstant
	// PolicyClustered builds Params.Clusters star clusters joined in a ring.
	PolicyClustered
)

// Canonical policy names used by configuration files and logs.
const (
	NameFullyConnected = "fully_connected"
	NameConstant       = "constant"
	NameClustered      = "clustered"
)

// String returns the canonical policy name.
func (p Policy) String() string {
	switch p {
	case PolicyFullyConnected:
		return NameFullyConnected
	case PolicyConstant:
		return NameConstant
	case PolicyClustered:
		return NameClustered
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a canonical name (case-insensitive, '-' accepted for '_')
// back to its Policy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_") {
	case NameFullyConnected:
		return PolicyFullyConnected, nil
	case NameConstant:
		return PolicyConstant, nil
	case NameClustered:
		return PolicyClustered, nil
	default:
		return 0, fmt.Errorf("ParsePolicy(%q): %w", name, ErrUnknownPolicy)
	}
}

// Params carries the policy-specific parameters. Fields a policy does not
// use are ignored (Degree for clustered, Clusters for constant, both for
// fully-connected).
type Params struct {
	// Nodes is the node count N (≥ 1).
	Nodes int
	// Degree is the target degree k of PolicyConstant (1 ≤ k ≤ N-1).
	Degree int
	// Clusters is the cluster count of PolicyClustered (divides N).
	Clusters int
}

// Generate builds a fresh topology according to policy and params.
//
// Errors:
//   - ErrInvalidParameters (wrapped with method context) when constraints are
//     violated; generation is never retried with different parameters.
//   - ErrUnknownPolicy for a policy outside the closed set.
//
// Complexity: O(N²) for every policy (matrix allocation dominates
// FullyConnected/Clustered; Constant adds O(N·k·log N) heap work).
func Generate(policy Policy, params Params, opts ...BuilderOption) (*topology.Matrix, error) {
	var (
		m   *topology.Matrix
		err error
	)
	switch policy {
	case PolicyFullyConnected:
		m, err = FullyConnected(params.Nodes, opts...)
	case PolicyConstant:
		m, err = Constant(params.Nodes, params.Degree, opts...)
	case PolicyClustered:
		m, err = Clustered(params.Nodes, params.Clusters, opts...)
	default:
		return nil, fmt.Errorf("%s: %s: %w", MethodGenerate, policy, ErrUnknownPolicy)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	return m, nil
}
