// SPDX-License-Identifier: MIT
// Package matrijs — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical method.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrijs

// ---------- Shape-alike constructors (O(rc) zeroing by runtime) ----------

// ZeroLike returns a fresh zero matrix with the same shape as m.
// Handy to preallocate staging buffers; cannot fail for a valid receiver.
// Complexity: O(r*c).
func ZeroLike(m *Matrix) *Matrix {
	return &Matrix{r: m.r, c: m.c, data: make([]float64, len(m.data))}
}

// OneLike returns a fresh all-ones matrix with the same shape as m.
// Complexity: O(r*c).
func OneLike(m *Matrix) *Matrix {
	res := ZeroLike(m)
	for idx := range res.data {
		res.data[idx] = 1.0
	}

	return res
}

// IdentityLike returns I with dimension = m.Rows(); requires square shape.
// Errors: ErrShapeMismatch when m is not square.
// Complexity: O(n^2).
func IdentityLike(m *Matrix) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, opErrorf(opIdentity, err)
	}

	return Identity(m.r)
}

// ---------- Arithmetic facades (map 1:1 to methods; O(rc) unless noted) ----------

// Sum is an alias for (*Matrix).Add: elementwise a + b.
// Complexity: O(rc).
func Sum(a, b *Matrix) (*Matrix, error) { return a.Add(b) }

// Diff is an alias for (*Matrix).Sub: elementwise a − b.
// Complexity: O(rc).
func Diff(a, b *Matrix) (*Matrix, error) { return a.Sub(b) }

// Hadamard is an alias for (*Matrix).Mul: elementwise product a ⊙ b.
// Complexity: O(rc).
func Hadamard(a, b *Matrix) (*Matrix, error) { return a.Mul(b) }

// Product is an alias for (*Matrix).Dot: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b *Matrix) (*Matrix, error) { return a.Dot(b) }

// Scale is an alias for (*Matrix).MulScalar: alpha*m.
// Complexity: O(rc).
func Scale(m *Matrix, alpha float64) *Matrix { return m.MulScalar(alpha) }

// Transpose is an alias for (*Matrix).T: returns mᵀ, receiver untouched.
// Complexity: O(rc).
func Transpose(m *Matrix) *Matrix { return m.T() }
