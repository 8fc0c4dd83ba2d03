// SPDX-License-Identifier: MIT
// Package: linkfail/builder
//
// constants.go — method tags and minimum sizes shared by generators.

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name for the Generate dispatcher.
	MethodGenerate = "Generate"
	// MethodFullyConnected is the canonical name for the FullyConnected generator.
	MethodFullyConnected = "FullyConnected"
	// MethodConstant is the canonical name for the degree-bounded generator.
	MethodConstant = "Constant"
	// MethodClustered is the canonical name for the clustered-ring generator.
	MethodClustered = "Clustered"
	// MethodRing is the canonical name for the Ring fixture.
	MethodRing = "Ring"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinNodes is the smallest node count accepted by every generator.
const MinNodes = 1

// MinDegree is the smallest target degree of the Constant generator.
const MinDegree = 1

// MinClusters is the smallest cluster count of the Clustered generator.
const MinClusters = 1

// MinRingNodes is the smallest meaningful size for a ring.
// A ring with fewer than 3 nodes cannot close without a multi-edge.
const MinRingNodes = 3

//-----------------------------------------------------------------------------
// Weights
//-----------------------------------------------------------------------------

// MinEdgeWeight is the smallest weight a generated edge may carry.
const MinEdgeWeight int64 = 1
