// SPDX-License-Identifier: MIT
// Package: matrijs
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/bounds checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. shape → length).
//  - Mutating kernels MUST run validators before touching the receiver so a
//    failure never leaves a partially mutated Matrix behind.

package matrijs

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew       = "New"
	opWithValue = "WithValue"
	opIdentity  = "Identity"
	opDiagonal  = "Diagonal"
	opFromRows  = "FromRows"
	opAt        = "At"
	opSet       = "Set"
	opRow       = "Row"
	opSetRow    = "SetRow"
	opCol       = "Col"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDiv       = "Div"
	opDot       = "Dot"
	opMatVec    = "MatVec"
	opAppendRow = "AppendRow"
	opAppendCol = "AppendCol"
)

// opErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape ensures requested dimensions describe a non-degenerate matrix.
// There is no empty matrix in this package: rows and cols must both be >= 1.
// Returns ErrShapeMismatch otherwise. Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrShapeMismatch // degenerate shapes are rejected at construction
	}

	return nil
}

// validateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are valid instances (caller must ensure).
// Returns nil or ErrShapeMismatch. Complexity: O(1).
func validateSameShape(a, b *Matrix) error {
	if a.r != b.r || a.c != b.c {
		return ErrShapeMismatch
	}

	return nil
}

// validateDotShape ensures the inner dimensions of a·b agree (a.Cols == b.Rows).
// Returns nil or ErrShapeMismatch. Complexity: O(1).
func validateDotShape(a, b *Matrix) error {
	if a.c != b.r {
		return ErrShapeMismatch
	}

	return nil
}

// validateVecLen ensures the vector length matches the required size n.
// A nil slice has length zero and fails like any other wrong length.
// Complexity: O(1).
func validateVecLen(x []float64, n int) error {
	if len(x) != n {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Exported so callers can pre-check identity-shaped uses before building one.
// Errors: ErrShapeMismatch if not square. Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if m.r != m.c {
		return ErrShapeMismatch
	}

	return nil
}
