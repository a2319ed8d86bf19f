// SPDX-License-Identifier: MIT
// Package matrijs provides a dense 2D float64 matrix container.
// Matrix is a concrete, row-major implementation storing its elements in a
// flat slice for performance and cache friendliness. Every instance owns its
// backing storage exclusively; copies are deep and by-value operations never
// mutate their operands.

package matrijs

import "fmt"

// Matrix is a row-major r×c grid of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order:
// the element at (i, j) lives at flat index i*c + j.
//
// The shape invariants hold for every valid instance:
//
//	len(data) == r*c
//	r >= 1 && c >= 1
//
// A Matrix is safe for concurrent use only when each goroutine works on a
// disjoint instance; the package provides no internal synchronization.
type Matrix struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.c
}

// Shape returns the (rows, cols) pair describing the matrix dimensions.
// Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) {
	return m.r, m.c
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Negative indices are invalid. Complexity: O(1).
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrIndexOutOfBounds when the position is outside the matrix.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, opErrorf(opAt, err)
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrIndexOutOfBounds when the position is outside the matrix.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return opErrorf(opSet, err)
	}
	m.data[idx] = v

	return nil
}

// Array returns a copy of the flat row-major backing data, length Rows*Cols.
// A copy (not a view) preserves the exclusive-ownership invariant: mutating
// the returned slice never affects the matrix.
// Complexity: O(r*c).
func (m *Matrix) Array() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Row returns a copy of the index-th row as a slice of length Cols.
// Errors: ErrIndexOutOfBounds when index is outside [0, Rows).
// Complexity: O(c).
func (m *Matrix) Row(index int) ([]float64, error) {
	if index < 0 || index >= m.r {
		return nil, opErrorf(opRow, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.c)
	copy(out, m.data[index*m.c:(index+1)*m.c]) // rows are contiguous in row-major order

	return out, nil
}

// SetRow overwrites the index-th row with values, which must have length
// Cols. The copy-in counterpart of Row for whole-row mutation; the input is
// copied, never retained. Both preconditions are checked before any write,
// so a failure leaves the matrix unchanged.
// Errors: ErrIndexOutOfBounds when index is outside [0, Rows);
// ErrShapeMismatch when len(values) != Cols.
// Complexity: O(c).
func (m *Matrix) SetRow(index int, values []float64) error {
	if index < 0 || index >= m.r {
		return opErrorf(opSetRow, ErrIndexOutOfBounds)
	}
	if err := validateVecLen(values, m.c); err != nil {
		return opErrorf(opSetRow, err)
	}
	copy(m.data[index*m.c:(index+1)*m.c], values)

	return nil
}

// Col returns a copy of the index-th column as a slice of length Rows.
// Errors: ErrIndexOutOfBounds when index is outside [0, Cols).
// Complexity: O(r).
func (m *Matrix) Col(index int) ([]float64, error) {
	if index < 0 || index >= m.c {
		return nil, opErrorf(opCol, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ { // columns stride across rows
		out[i] = m.data[i*m.c+index]
	}

	return out, nil
}

// Clone returns a deep copy of the matrix with freshly allocated storage.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Matrix{r: m.r, c: m.c, data: copyData}
}

// Equal reports whether m and o have identical shape and identical entries at
// every position, using exact float64 equality (no epsilon tolerance; note
// that NaN != NaN under IEEE semantics). Callers needing tolerance-based
// comparison must implement it externally.
// Complexity: O(r*c).
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != o.data[idx] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Matrix) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["
		for j = 0; j < m.c; j++ { // iterate over columns
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
