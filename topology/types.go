// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Matrix, Edge and Snapshot types, sentinel errors, constructors.
// Policy:
//   - A Matrix is always square, symmetric, and carries SelfLoop on its diagonal.
//   - Node count is fixed at construction; there is no resize.
//   - Matrix is NOT goroutine-safe; callers give each trial its own copy.

package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology construction and mutation.
var (
	// ErrInvalidParameters indicates that a topology could not be constructed
	// because its parameters violate a structural constraint (n < 1, infeasible
	// degree, cluster count not dividing node count, malformed rows, ...).
	ErrInvalidParameters = errors.New("topology: invalid parameters")

	// ErrNodeOutOfRange indicates a node index outside [0, Len()).
	ErrNodeOutOfRange = errors.New("topology: node index out of range")

	// ErrSelfLoop indicates an attempt to place an edge on the diagonal.
	ErrSelfLoop = errors.New("topology: self-loop is not an edge")

	// ErrBadWeight indicates a non-positive weight given to SetEdge.
	ErrBadWeight = errors.New("topology: edge weight must be positive")

	// ErrAsymmetric indicates that w[i][j] != w[j][i] for some pair.
	ErrAsymmetric = errors.New("topology: matrix is not symmetric")
)

const (
	// SelfLoop is the sentinel stored on every diagonal entry. It marks the
	// node itself and is never read as a traversable edge.
	SelfLoop int64 = 1

	// NoEdge is the off-diagonal value meaning "no link".
	NoEdge int64 = 0

	// DefaultMaxWeight is the default upper bound for generated edge weights.
	DefaultMaxWeight int64 = 10

	// MinNodes is the smallest node count of a valid topology.
	MinNodes = 1
)

// Edge is an undirected link between two node indices. From < To for edges
// returned by Matrix.Edges; algorithms may emit either orientation.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// String renders the edge as "u-v(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.From, e.To, e.Weight)
}

// Matrix is a weighted, undirected adjacency matrix of a fixed node count.
//
// data[i][j] holds the weight (capacity) of link i–j, or NoEdge. The
// diagonal always holds SelfLoop. Every mutation writes both halves.
type Matrix struct {
	data [][]int64
}

// New returns an edgeless topology of n nodes (diagonal set to SelfLoop).
//
// Errors:
//   - ErrInvalidParameters if n < MinNodes.
//
// Complexity: O(n²) time and space.
func New(n int) (*Matrix, error) {
	if n < MinNodes {
		return nil, fmt.Errorf("New: n=%d < min=%d: %w", n, MinNodes, ErrInvalidParameters)
	}

	// Single backing array keeps the rows contiguous and Clone cheap.
	backing := make([]int64, n*n)
	data := make([][]int64, n)
	for i := 0; i < n; i++ {
		data[i] = backing[i*n : (i+1)*n : (i+1)*n]
		data[i][i] = SelfLoop
	}

	return &Matrix{data: data}, nil
}

// FromRows builds a Matrix from explicit rows. The rows are copied. Diagonal
// values in rows are ignored and replaced with SelfLoop.
//
// Errors:
//   - ErrInvalidParameters if rows is empty, not square, or holds a negative weight.
//   - ErrAsymmetric (wrapping ErrInvalidParameters) if rows[i][j] != rows[j][i].
func FromRows(rows [][]int64) (*Matrix, error) {
	n := len(rows)
	m, err := New(n)
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}

	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w",
				i, len(rows[i]), n, ErrInvalidParameters)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := rows[i][j]
			if w < 0 {
				return nil, fmt.Errorf("FromRows: w[%d][%d]=%d < 0: %w", i, j, w, ErrInvalidParameters)
			}
			if rows[j][i] != w {
				return nil, fmt.Errorf("FromRows: w[%d][%d]=%d != w[%d][%d]=%d: %w: %w",
					i, j, w, j, i, rows[j][i], ErrAsymmetric, ErrInvalidParameters)
			}
			m.data[i][j] = w
			m.data[j][i] = w
		}
	}

	return m, nil
}

// Snapshot is an immutable deep copy of a Matrix, taken before perturbation.
// Restore hands out private copies, so a Snapshot may be shared read-only
// between goroutines.
type Snapshot struct {
	m *Matrix
}

// NewSnapshot captures a deep copy of m.
func NewSnapshot(m *Matrix) Snapshot {
	return Snapshot{m: m.Clone()}
}

// Restore returns a fresh mutable copy of the captured topology.
func (s Snapshot) Restore() *Matrix {
	return s.m.Clone()
}

// Len reports the node count of the captured topology (0 for a zero Snapshot).
func (s Snapshot) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// EdgeCount reports the number of links in the captured topology.
func (s Snapshot) EdgeCount() int {
	if s.m == nil {
		return 0
	}
	return s.m.EdgeCount()
}
