// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Queries and the two permitted mutations (SetEdge, RemoveEdge).
// Determinism:
//   - Neighbors and Edges iterate in ascending index order.

package topology

import "fmt"

// Len returns the node count N.
func (m *Matrix) Len() int { return len(m.data) }

// Weight returns the raw entry w[i][j]. The diagonal returns SelfLoop;
// use HasEdge to test for a traversable link.
// Panics on out-of-range indices like a slice access does.
func (m *Matrix) Weight(i, j int) int64 { return m.data[i][j] }

// HasEdge reports whether i–j is a live link (i != j and w[i][j] > 0).
func (m *Matrix) HasEdge(i, j int) bool {
	return i != j && m.data[i][j] > NoEdge
}

// SetEdge inserts (or re-weights) the undirected link i–j with weight w.
//
// Errors:
//   - ErrNodeOutOfRange if i or j is outside [0, Len()).
//   - ErrSelfLoop if i == j.
//   - ErrBadWeight if w <= 0.
//
// Complexity: O(1).
func (m *Matrix) SetEdge(i, j int, w int64) error {
	if err := m.checkPair(i, j); err != nil {
		return fmt.Errorf("SetEdge(%d,%d): %w", i, j, err)
	}
	if w <= NoEdge {
		return fmt.Errorf("SetEdge(%d,%d): w=%d: %w", i, j, w, ErrBadWeight)
	}
	m.data[i][j] = w
	m.data[j][i] = w

	return nil
}

// RemoveEdge deletes the link i–j. It reports whether a live link was removed.
//
// Errors:
//   - ErrNodeOutOfRange if i or j is outside [0, Len()).
//   - ErrSelfLoop if i == j.
func (m *Matrix) RemoveEdge(i, j int) (bool, error) {
	if err := m.checkPair(i, j); err != nil {
		return false, fmt.Errorf("RemoveEdge(%d,%d): %w", i, j, err)
	}
	if m.data[i][j] == NoEdge {
		return false, nil
	}
	m.data[i][j] = NoEdge
	m.data[j][i] = NoEdge

	return true, nil
}

// Neighbors returns the indices linked to i in ascending order.
// Complexity: O(N).
func (m *Matrix) Neighbors(i int) []int {
	row := m.data[i]
	out := make([]int, 0)
	for j, w := range row {
		if j != i && w > NoEdge {
			out = append(out, j)
		}
	}
	return out
}

// Degree returns the number of links incident to i.
func (m *Matrix) Degree(i int) int {
	deg := 0
	for j, w := range m.data[i] {
		if j != i && w > NoEdge {
			deg++
		}
	}
	return deg
}

// EdgeCount returns the number of undirected links.
// Complexity: O(N²).
func (m *Matrix) EdgeCount() int {
	n := len(m.data)
	count := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.data[i][j] > NoEdge {
				count++
			}
		}
	}
	return count
}

// Edges lists every link once as (i, j, w) with i < j, in row-major order.
func (m *Matrix) Edges() []Edge {
	n := len(m.data)
	out := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w := m.data[i][j]; w > NoEdge {
				out = append(out, Edge{From: i, To: j, Weight: w})
			}
		}
	}
	return out
}

// TotalWeight sums the weights of all links (each counted once).
func (m *Matrix) TotalWeight() int64 {
	var sum int64
	for _, e := range m.Edges() {
		sum += e.Weight
	}
	return sum
}

// Clone returns a deep copy backed by fresh memory.
// Complexity: O(N²).
func (m *Matrix) Clone() *Matrix {
	n := len(m.data)
	backing := make([]int64, n*n)
	data := make([][]int64, n)
	for i := 0; i < n; i++ {
		data[i] = backing[i*n : (i+1)*n : (i+1)*n]
		copy(data[i], m.data[i])
	}
	return &Matrix{data: data}
}

// Rows returns a copy of the matrix as plain rows, diagonal included.
func (m *Matrix) Rows() [][]int64 {
	return m.Clone().data
}

// Equal reports whether both matrices have the same size and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || len(m.data) != len(o.data) {
		return false
	}
	for i := range m.data {
		for j := range m.data[i] {
			if m.data[i][j] != o.data[i][j] {
				return false
			}
		}
	}
	return true
}

// Validate checks the structural invariants: SelfLoop on the diagonal,
// symmetry and non-negative weights. Mutations through this package never
// break them; Validate exists for tests and for matrices assembled elsewhere.
func (m *Matrix) Validate() error {
	n := len(m.data)
	for i := 0; i < n; i++ {
		if m.data[i][i] != SelfLoop {
			return fmt.Errorf("Validate: w[%d][%d]=%d, want SelfLoop: %w", i, i, m.data[i][i], ErrInvalidParameters)
		}
		for j := i + 1; j < n; j++ {
			if m.data[i][j] != m.data[j][i] {
				return fmt.Errorf("Validate: pair (%d,%d): %w", i, j, ErrAsymmetric)
			}
			if m.data[i][j] < NoEdge {
				return fmt.Errorf("Validate: w[%d][%d]=%d: %w", i, j, m.data[i][j], ErrBadWeight)
			}
		}
	}
	return nil
}

// checkPair validates a pair of indices for a mutation.
func (m *Matrix) checkPair(i, j int) error {
	n := len(m.data)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("n=%d: %w", n, ErrNodeOutOfRange)
	}
	if i == j {
		return ErrSelfLoop
	}
	return nil
}

// InRange reports whether i is a valid node index.
func (m *Matrix) InRange(i int) bool { return i >= 0 && i < len(m.data) }
