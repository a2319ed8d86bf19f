// SPDX-License-Identifier: MIT
// Package matrijs — constructors.
//
// Purpose:
//   - Build Matrix instances from flat data, fill values, or nested row slices.
//   - Enforce the shape invariants in one place: every constructor validates
//     before allocating, and a failed construction allocates nothing.
//
// Policy:
//   - Degenerate shapes (rows < 1 or cols < 1) are rejected with
//     ErrShapeMismatch across ALL constructors; there is no empty matrix.
//   - Input slices are always copied, never retained, so the new Matrix owns
//     its storage exclusively.

package matrijs

// New builds an r×c Matrix from an explicit flat row-major sequence.
// Stage 1 (Validate): rows/cols >= 1 and len(values) == rows*cols.
// Stage 2 (Prepare): allocate flat backing slice and copy values.
// Stage 3 (Finalize): return new Matrix or ErrShapeMismatch.
// Complexity: O(r*c) time and memory.
func New(rows, cols int, values []float64) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, opErrorf(opNew, err)
	}
	if len(values) != rows*cols {
		return nil, opErrorf(opNew, ErrShapeMismatch)
	}
	data := make([]float64, rows*cols)
	copy(data, values) // copy so the caller's slice is never retained

	return &Matrix{r: rows, c: cols, data: data}, nil
}

// WithValue creates an r×c Matrix with every entry set to v.
// Complexity: O(r*c).
func WithValue(rows, cols int, v float64) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, opErrorf(opWithValue, err)
	}
	data := make([]float64, rows*cols)
	if v != 0 { // make() already zero-initializes
		for idx := range data {
			data[idx] = v
		}
	}

	return &Matrix{r: rows, c: cols, data: data}, nil
}

// Zero creates an r×c Matrix with all entries 0.0.
// Complexity: O(r*c).
func Zero(rows, cols int) (*Matrix, error) {
	return WithValue(rows, cols, 0.0)
}

// One creates an r×c Matrix with all entries 1.0.
// Complexity: O(r*c).
func One(rows, cols int) (*Matrix, error) {
	return WithValue(rows, cols, 1.0)
}

// Identity creates the n×n identity matrix I_n: 1.0 on the diagonal (i == j),
// 0.0 elsewhere. Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func Identity(n int) (*Matrix, error) {
	m, err := Zero(n, n)
	if err != nil {
		return nil, opErrorf(opIdentity, ErrShapeMismatch)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// Diagonal creates a square matrix of size len(values) with values[k] at
// (k, k) and 0.0 elsewhere. An empty values slice is a degenerate shape and
// fails with ErrShapeMismatch.
// Complexity: O(n^2).
func Diagonal(values []float64) (*Matrix, error) {
	n := len(values)
	m, err := Zero(n, n)
	if err != nil {
		return nil, opErrorf(opDiagonal, ErrShapeMismatch)
	}
	for i, v := range values {
		m.data[i*n+i] = v
	}

	return m, nil
}

// FromRows builds a Matrix from nested row slices, one slice per row.
// It is the literal-construction convenience: FromRows produces exactly the
// same Matrix as New with the equivalent flat row-major data.
//
//	m, err := matrijs.FromRows(
//	    []float64{0, 1},
//	    []float64{-1, 0},
//	)
//
// Stage 1 (Validate): at least one row, first row non-empty, all row lengths
// identical — inconsistent lengths fail with ErrShapeMismatch.
// Stage 2 (Execute): copy rows into a single flat slice in order.
// Complexity: O(r*c).
func FromRows(rows ...[]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, opErrorf(opFromRows, ErrShapeMismatch)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols { // ragged input is rejected, never truncated or padded
			return nil, opErrorf(opFromRows, ErrShapeMismatch)
		}
		data = append(data, row...)
	}

	return &Matrix{r: len(rows), c: cols, data: data}, nil
}
