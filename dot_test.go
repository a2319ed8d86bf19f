// SPDX-License-Identifier: MIT
// Package matrijs_test — dot product and matrix-vector tests.

package matrijs_test

import (
	"math"
	"testing"

	"github.com/ma3ke/matrijs"
	"github.com/stretchr/testify/require"
)

// TestDotConcrete replays the documented product:
// [[0,1],[2,3]] · [[4,5,6],[7,8,9]] == [[7,8,9],[29,34,39]].
func TestDotConcrete(t *testing.T) {
	a := mustFromRows(t, []float64{0, 1}, []float64{2, 3})
	b := mustFromRows(t, []float64{4, 5, 6}, []float64{7, 8, 9})

	c, err := a.Dot(b)
	require.NoError(t, err)

	expected := mustFromRows(t, []float64{7, 8, 9}, []float64{29, 34, 39})
	require.True(t, c.Equal(expected))

	rows, cols := c.Shape() // (a.rows, b.cols)
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
}

// TestDotIdentityIdempotent verifies identity(m)·a == a and a·identity(n) == a
// for a non-square a of shape (m, n).
func TestDotIdentityIdempotent(t *testing.T) {
	a := mustNew(t, 2, 3, []float64{0, 1, 2, 3, 4, 5})

	left, err := matrijs.Identity(2)
	require.NoError(t, err)
	la, err := left.Dot(a)
	require.NoError(t, err)
	require.True(t, la.Equal(a))

	right, err := matrijs.Identity(3)
	require.NoError(t, err)
	ar, err := a.Dot(right)
	require.NoError(t, err)
	require.True(t, ar.Equal(a))
}

// TestDotShapeMismatch ensures incompatible inner dimensions are rejected:
// a (2,3) · (2,2) product must fail with ErrShapeMismatch.
func TestDotShapeMismatch(t *testing.T) {
	a := mustNew(t, 2, 3, []float64{0, 1, 2, 3, 4, 5})
	b := mustNew(t, 2, 2, []float64{1, 2, 3, 4})

	_, err := a.Dot(b)
	require.ErrorIs(t, err, matrijs.ErrShapeMismatch)
}

// TestDotOperandsUntouched verifies Dot never mutates its operands.
func TestDotOperandsUntouched(t *testing.T) {
	a := mustNew(t, 2, 2, []float64{0, 1, 2, 3})
	b := mustNew(t, 2, 2, []float64{4, 5, 6, 7})

	_, err := a.Dot(b)
	require.NoError(t, err)

	require.Equal(t, []float64{0, 1, 2, 3}, a.Array())
	require.Equal(t, []float64{4, 5, 6, 7}, b.Array())
}

// TestDotNonFinitePropagation checks IEEE semantics on non-finite operands:
// every a[i,k]*b[k,j] term enters the sum, so a zero entry meeting ±Inf
// contributes NaN instead of being silently dropped.
func TestDotNonFinitePropagation(t *testing.T) {
	zero, err := matrijs.Zero(1, 1)
	require.NoError(t, err)
	inf := mustNew(t, 1, 1, []float64{math.Inf(+1)})

	prod, err := zero.Dot(inf) // 0 * +Inf → NaN
	require.NoError(t, err)
	require.True(t, math.IsNaN(mustAt(t, prod, 0, 0)))

	// An Inf row meeting a finite column still overflows to +Inf.
	a := mustNew(t, 1, 2, []float64{math.Inf(+1), 1})
	b := mustNew(t, 2, 1, []float64{1, 1})
	prod, err = a.Dot(b) // Inf*1 + 1*1 → +Inf
	require.NoError(t, err)
	require.True(t, math.IsInf(mustAt(t, prod, 0, 0), +1))
}

// TestMatVecNonFinitePropagation checks the same rule for MatVec: a NaN
// entry times a zero vector component is NaN, not zero.
func TestMatVecNonFinitePropagation(t *testing.T) {
	m := mustNew(t, 1, 1, []float64{math.NaN()})

	y, err := m.MatVec([]float64{0})
	require.NoError(t, err)
	require.True(t, math.IsNaN(y[0])) // NaN * 0 → NaN

	inf := mustNew(t, 1, 2, []float64{math.Inf(-1), 0})
	y, err = inf.MatVec([]float64{0, 1}) // -Inf*0 + 0*1 → NaN
	require.NoError(t, err)
	require.True(t, math.IsNaN(y[0]))
}

// TestMatVec verifies y = m·x against a manual inner-product computation.
func TestMatVec(t *testing.T) {
	m := mustFromRows(t,
		[]float64{1, 2, 3},
		[]float64{4, 5, 6},
	)

	y, err := m.MatVec([]float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y) // (1-3, 4-6)
}

// TestMatVecLengthMismatch ensures a wrong-length vector is rejected.
func TestMatVecLengthMismatch(t *testing.T) {
	m := mustNew(t, 2, 3, []float64{0, 1, 2, 3, 4, 5})

	_, err := m.MatVec([]float64{1, 2}) // needs length 3
	require.ErrorIs(t, err, matrijs.ErrShapeMismatch)

	_, err = m.MatVec(nil) // nil has length 0
	require.ErrorIs(t, err, matrijs.ErrShapeMismatch)
}
