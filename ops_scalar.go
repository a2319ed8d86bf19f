// SPDX-License-Identifier: MIT
// Package matrijs — scalar arithmetic kernels.
//
// Purpose:
//   - Combine every entry with a scalar independently, in both a pure form
//     (fresh result, receiver untouched) and an in-place form.
//
// Policy:
//   - The scalar is always the right-hand operand: SubScalar computes
//     entry - s and DivScalar computes entry / s, never the reverse.
//   - Division by a zero scalar follows IEEE float64 semantics and produces
//     ±Inf or NaN; there is no explicit guard.
//   - Result shape equals operand shape; scalar kernels cannot fail on a
//     valid receiver, so none of them returns an error.
//
// Determinism:
//   - Single flat loop 0..(r*c-1) in every kernel.

package matrijs

// AddScalar returns a new Matrix whose entries are m[i,j] + s.
// The receiver is never mutated. Complexity: O(r*c).
func (m *Matrix) AddScalar(s float64) *Matrix {
	res := m.Clone()
	res.AddScalarInPlace(s)

	return res
}

// SubScalar returns a new Matrix whose entries are m[i,j] - s.
// The receiver is never mutated. Complexity: O(r*c).
func (m *Matrix) SubScalar(s float64) *Matrix {
	res := m.Clone()
	res.SubScalarInPlace(s)

	return res
}

// MulScalar returns a new Matrix whose entries are m[i,j] * s.
// The receiver is never mutated. Complexity: O(r*c).
func (m *Matrix) MulScalar(s float64) *Matrix {
	res := m.Clone()
	res.MulScalarInPlace(s)

	return res
}

// DivScalar returns a new Matrix whose entries are m[i,j] / s.
// The receiver is never mutated; s == 0 yields ±Inf/NaN entries.
// Complexity: O(r*c).
func (m *Matrix) DivScalar(s float64) *Matrix {
	res := m.Clone()
	res.DivScalarInPlace(s)

	return res
}

// AddScalarInPlace adds s to every entry of the receiver.
// Complexity: O(r*c).
func (m *Matrix) AddScalarInPlace(s float64) {
	for idx := range m.data {
		m.data[idx] += s
	}
}

// SubScalarInPlace subtracts s from every entry of the receiver.
// Complexity: O(r*c).
func (m *Matrix) SubScalarInPlace(s float64) {
	for idx := range m.data {
		m.data[idx] -= s
	}
}

// MulScalarInPlace multiplies every entry of the receiver by s.
// Complexity: O(r*c).
func (m *Matrix) MulScalarInPlace(s float64) {
	for idx := range m.data {
		m.data[idx] *= s
	}
}

// DivScalarInPlace divides every entry of the receiver by s.
// s == 0 yields ±Inf/NaN entries per IEEE semantics.
// Complexity: O(r*c).
func (m *Matrix) DivScalarInPlace(s float64) {
	for idx := range m.data {
		m.data[idx] /= s
	}
}
