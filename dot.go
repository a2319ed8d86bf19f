// SPDX-License-Identifier: MIT
// Package matrijs — matrix product kernels.
//
// Purpose:
//   - Provide the dot product (standard matrix multiplication) and the
//     matrix-vector product, both as pure operations over validated shapes.
//
// Determinism:
//   - Dot uses a fixed i→k→j triple loop over the flat row-major slices;
//     MatVec uses one flat pass per row. Results are stable across runs.

package matrijs

// Dot computes the standard matrix product C = m × o.
//
// From an r×n matrix A and an n×p matrix B, C = AB is r×p with
//
//	        n-1
//	c_ij =  Σ   a_ik * b_kj
//	        k=0
//
// Requires m.Cols == o.Rows; fails with ErrShapeMismatch otherwise.
// This is row/column inner products, NOT the elementwise Mul.
// Multiplying by the identity of matching size is idempotent.
//
// The i→k→j loop order walks both operands row-major; the triple loop is
// unconditional so every a_ik * b_kj term contributes to the IEEE sum —
// 0 * ±Inf is NaN and must not be short-circuited away. No blocking or
// other optimization.
// Complexity: O(r*n*p) time, O(r*p) space for the result.
func (m *Matrix) Dot(o *Matrix) (*Matrix, error) {
	if err := validateDotShape(m, o); err != nil {
		return nil, opErrorf(opDot, err)
	}

	rows, inner, cols := m.r, m.c, o.c
	res := &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}

	var i, j, k int
	var rowOffsetA, rowOffsetB, rowOffsetR int
	var aik float64
	for i = 0; i < rows; i++ {
		rowOffsetA = i * inner
		rowOffsetR = i * cols
		for k = 0; k < inner; k++ {
			aik = m.data[rowOffsetA+k]
			rowOffsetB = k * cols
			for j = 0; j < cols; j++ {
				res.data[rowOffsetR+j] += aik * o.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = m · x for a column vector x.
//
// Contract: len(x) == m.Cols; fails with ErrShapeMismatch otherwise.
// One flat, row-major pass per row; every m[i,j]*x[j] term enters the IEEE
// sum unconditionally so NaN/±Inf entries propagate (NaN * 0 is NaN).
// Complexity: O(r*c) time, O(r) space for y.
func (m *Matrix) MatVec(x []float64) ([]float64, error) {
	if err := validateVecLen(x, m.c); err != nil {
		return nil, opErrorf(opMatVec, err)
	}

	y := make([]float64, m.r)
	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
