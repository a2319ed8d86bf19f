// SPDX-License-Identifier: MIT
// Package matrijs: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package matrijs

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrijs: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with opErrorf("Op", ErrX) at the
// call site — callers will still use errors.Is to match.
//
// ERROR TAXONOMY (two kinds suffice):
// shape preconditions -> ErrShapeMismatch; element access -> ErrIndexOutOfBounds.

var (
	// ErrShapeMismatch indicates a violated dimensional precondition:
	// construction from a wrong-length flat slice or non-positive dimensions,
	// inconsistent row lengths in FromRows, elementwise ops between different
	// shapes, Dot with incompatible inner dimensions, MatVec with a
	// wrong-length vector, or append with a wrong-length row/column.
	ErrShapeMismatch = errors.New("matrijs: shape mismatch")

	// ErrIndexOutOfBounds indicates that a row or column index is outside the
	// valid range. Public indexers (At/Set/Row/Col) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrijs: index out of bounds")
)
