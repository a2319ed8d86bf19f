// SPDX-License-Identifier: MIT
// Package matrijs — transpose kernels.

package matrijs

// TransposeInPlace transposes the receiver in place: rows and cols swap, and
// the entry that was at (i, j) ends up at (j, i).
//
// The element count is unchanged but the row stride is not, so the data is
// re-laid-out into a fresh backing slice; writing through the old storage
// would alias incorrectly for non-square shapes.
// Complexity: O(r*c) time and memory.
func (m *Matrix) TransposeInPlace() {
	transposed := make([]float64, len(m.data))
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			// data[i*c + j] → transposed[j*r + i]
			transposed[j*m.r+i] = m.data[baseSrc+j]
		}
	}
	m.r, m.c = m.c, m.r
	m.data = transposed
}

// T returns a new Matrix equal to the transpose of the receiver, leaving the
// receiver unmodified. Equivalent to clone-then-TransposeInPlace.
// Property: m.T().T() equals m in shape and entries.
// Complexity: O(r*c) time and memory.
func (m *Matrix) T() *Matrix {
	res := m.Clone()
	res.TransposeInPlace()

	return res
}
