// SPDX-License-Identifier: MIT
// Package matrijs — elementwise matrix-matrix kernels.
//
// Purpose:
//   - Combine two matrices of identical shape entry-by-entry at matching
//     (i, j) positions: addition, subtraction, multiplication, division.
//
// Policy:
//   - Shapes must match exactly; no broadcasting, no truncation, no padding.
//     A mismatch fails fast with ErrShapeMismatch.
//   - In-place kernels validate BEFORE mutating, so a failure leaves the
//     receiver unchanged; pure kernels validate before allocating.
//   - Mul/Div here are elementwise (Hadamard); the dot product lives in Dot.
//   - Division by zero entries follows IEEE float64 semantics (±Inf/NaN).
//
// Determinism:
//   - Single flat loop 0..(r*c-1) in every kernel; both backing slices are
//     walked in lockstep since the shapes are identical.

package matrijs

// ewInPlace validates shapes and applies op pairwise into the receiver.
// Shared by all eight elementwise entry points to keep validation and loop
// order in one place.
func (m *Matrix) ewInPlace(o *Matrix, op func(a, b float64) float64, tag string) error {
	if err := validateSameShape(m, o); err != nil {
		return opErrorf(tag, err)
	}
	for idx := range m.data { // fixed 0..n-1 order, deterministic
		m.data[idx] = op(m.data[idx], o.data[idx])
	}

	return nil
}

// ewNew validates shapes, then applies op into a fresh clone of the receiver.
// Validation runs before allocation so a mismatch costs nothing.
func (m *Matrix) ewNew(o *Matrix, op func(a, b float64) float64, tag string) (*Matrix, error) {
	if err := validateSameShape(m, o); err != nil {
		return nil, opErrorf(tag, err)
	}
	res := m.Clone()
	for idx := range res.data {
		res.data[idx] = op(res.data[idx], o.data[idx])
	}

	return res, nil
}

// Add returns a new Matrix C with C[i,j] = m[i,j] + o[i,j].
// Errors: ErrShapeMismatch when shapes differ. Operands are not mutated.
// Complexity: O(r*c) time, O(r*c) space for the result.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	return m.ewNew(o, func(a, b float64) float64 { return a + b }, opAdd)
}

// Sub returns a new Matrix C with C[i,j] = m[i,j] - o[i,j].
// Errors: ErrShapeMismatch when shapes differ. Operands are not mutated.
// Complexity: O(r*c) time, O(r*c) space for the result.
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) {
	return m.ewNew(o, func(a, b float64) float64 { return a - b }, opSub)
}

// Mul returns the elementwise (Hadamard) product C[i,j] = m[i,j] * o[i,j].
// This is NOT matrix multiplication; use Dot for row/column inner products.
// Errors: ErrShapeMismatch when shapes differ. Operands are not mutated.
// Complexity: O(r*c) time, O(r*c) space for the result.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	return m.ewNew(o, func(a, b float64) float64 { return a * b }, opMul)
}

// Div returns the elementwise quotient C[i,j] = m[i,j] / o[i,j].
// Zero divisors yield ±Inf/NaN entries per IEEE semantics.
// Errors: ErrShapeMismatch when shapes differ. Operands are not mutated.
// Complexity: O(r*c) time, O(r*c) space for the result.
func (m *Matrix) Div(o *Matrix) (*Matrix, error) {
	return m.ewNew(o, func(a, b float64) float64 { return a / b }, opDiv)
}

// AddInPlace sets m[i,j] += o[i,j] for every position.
// Errors: ErrShapeMismatch when shapes differ; the receiver is then unchanged.
// Complexity: O(r*c).
func (m *Matrix) AddInPlace(o *Matrix) error {
	return m.ewInPlace(o, func(a, b float64) float64 { return a + b }, opAdd)
}

// SubInPlace sets m[i,j] -= o[i,j] for every position.
// Errors: ErrShapeMismatch when shapes differ; the receiver is then unchanged.
// Complexity: O(r*c).
func (m *Matrix) SubInPlace(o *Matrix) error {
	return m.ewInPlace(o, func(a, b float64) float64 { return a - b }, opSub)
}

// MulInPlace sets m[i,j] *= o[i,j] for every position (Hadamard, not Dot).
// Errors: ErrShapeMismatch when shapes differ; the receiver is then unchanged.
// Complexity: O(r*c).
func (m *Matrix) MulInPlace(o *Matrix) error {
	return m.ewInPlace(o, func(a, b float64) float64 { return a * b }, opMul)
}

// DivInPlace sets m[i,j] /= o[i,j] for every position.
// Errors: ErrShapeMismatch when shapes differ; the receiver is then unchanged.
// Complexity: O(r*c).
func (m *Matrix) DivInPlace(o *Matrix) error {
	return m.ewInPlace(o, func(a, b float64) float64 { return a / b }, opDiv)
}
