// SPDX-License-Identifier: MIT
// Package matrijs_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and boilerplate reducers for the
//     per-concern test files.
//   - Keep all data finite and well-formed unless a test exercises IEEE
//     edge cases on purpose.

package matrijs_test

import (
	"math/rand"
	"testing"

	"github.com/ma3ke/matrijs"
	"github.com/stretchr/testify/require"
)

// mustNew allocates a rows×cols Matrix from flat values or fails the test.
func mustNew(t *testing.T, rows, cols int, values []float64) *matrijs.Matrix {
	t.Helper()
	m, err := matrijs.New(rows, cols, values)
	require.NoError(t, err) // fixture construction must never fail

	return m
}

// mustFromRows builds a Matrix from nested row slices or fails the test.
func mustFromRows(t *testing.T, rows ...[]float64) *matrijs.Matrix {
	t.Helper()
	m, err := matrijs.FromRows(rows...)
	require.NoError(t, err)

	return m
}

// mustAt reads one element or fails the test.
func mustAt(t *testing.T, m *matrijs.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// benchDense allocates an n×n matrix filled from a seeded deterministic
// source, for benchmarks only.
func benchDense(b *testing.B, n int, seed int64) *matrijs.Matrix {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n*n)
	for idx := range values {
		values[idx] = rng.Float64()
	}
	m, err := matrijs.New(n, n, values)
	if err != nil {
		b.Fatal(err)
	}

	return m
}
