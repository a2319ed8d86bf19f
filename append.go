// SPDX-License-Identifier: MIT
// Package matrijs — structural mutation (row/column append).
//
// Policy:
//   - Both kernels validate the incoming slice length BEFORE touching the
//     receiver, so a failure leaves shape and data unchanged.
//   - The row-major invariant len(data) == r*c holds again on return.

package matrijs

// AppendRow appends row at the bottom of the matrix and increments Rows by 1.
//
// Contract: len(row) == Cols; fails with ErrShapeMismatch otherwise.
// Rows are contiguous in row-major order, so the new row simply extends the
// backing slice; the input is copied, never retained.
// Complexity: O(c) amortized.
func (m *Matrix) AppendRow(row []float64) error {
	if err := validateVecLen(row, m.c); err != nil {
		return opErrorf(opAppendRow, err)
	}
	m.data = append(m.data, row...)
	m.r++

	return nil
}

// AppendCol appends col at the right edge of the matrix and increments Cols by 1.
//
// Contract: len(col) == Rows; fails with ErrShapeMismatch otherwise.
// Unlike AppendRow, the new values interleave between existing rows in
// row-major storage, so the data is re-laid-out into a fresh backing slice.
// Complexity: O(r*c) time and memory.
func (m *Matrix) AppendCol(col []float64) error {
	if err := validateVecLen(col, m.r); err != nil {
		return opErrorf(opAppendCol, err)
	}

	newCols := m.c + 1
	relaid := make([]float64, 0, m.r*newCols)
	var i int
	for i = 0; i < m.r; i++ {
		relaid = append(relaid, m.data[i*m.c:(i+1)*m.c]...) // old row i
		relaid = append(relaid, col[i])                     // new trailing entry
	}
	m.c = newCols
	m.data = relaid

	return nil
}
