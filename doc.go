// SPDX-License-Identifier: MIT

// Package matrijs is a small, flat container for dense 2D float64 matrices —
// creation, elementwise arithmetic, transpose, dot product and row/column
// growth, with nothing hiding underneath.
//
// What matrijs provides:
//
//   - Constructors: New (flat row-major data), WithValue, Zero, One,
//     Identity, Diagonal, and FromRows for readable nested-slice literals.
//   - Introspection & access: Rows, Cols, Shape, At, Set, Array, Row,
//     SetRow, Col, Clone, Equal, String.
//   - Scalar arithmetic: AddScalar/SubScalar/MulScalar/DivScalar with
//     matching *InPlace forms; the scalar is always the right-hand operand.
//   - Elementwise arithmetic: Add/Sub/Mul/Div between same-shape matrices
//     (Mul is the Hadamard product), again with *InPlace forms.
//   - Dot product: standard matrix multiplication via Dot, plus MatVec.
//   - Structure: TransposeInPlace and T, AppendRow and AppendCol.
//   - Facades: Sum, Diff, Hadamard, Product, Scale, Transpose, ZeroLike,
//     OneLike, IdentityLike — thin aliases for discoverability.
//
// Why choose matrijs?
//
//   - Minimal API, clear and intuitive naming — one type, no interfaces.
//   - Strict fail-fast validation — every shape precondition surfaces as
//     ErrShapeMismatch, every bad index as ErrIndexOutOfBounds, matched
//     via errors.Is; operations never panic and never partially mutate.
//   - Pure Go — no cgo, no hidden deps, fully synchronous.
//
// Storage is row-major: a matrix of shape (r, c) keeps its entries in one
// flat slice of length r*c, the element at (i, j) at flat index i*c + j.
// Every Matrix owns its storage exclusively; by-value operations return
// fresh instances and copies are always deep.
//
// Quick example:
//
//	m, _ := matrijs.FromRows(
//	    []float64{0, 1},
//	    []float64{-1, 0},
//	)
//	m.AddScalarInPlace(1.0) // [[1, 2], [0, 1]]
//
//	a, _ := matrijs.FromRows([]float64{0, 1}, []float64{2, 3})
//	b, _ := matrijs.FromRows([]float64{4, 5, 6}, []float64{7, 8, 9})
//	c, _ := a.Dot(b) // [[7, 8, 9], [29, 34, 39]]
//
// matrijs is explicitly NOT a linear-algebra engine: no decompositions, no
// inversion, no eigenvalues, no sparse storage, no broadcasting and no
// parallelism. Arithmetic follows native IEEE float64 semantics; division
// by zero produces ±Inf/NaN without a guard.
package matrijs
