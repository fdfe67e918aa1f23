// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the elimination kernels.
//   • Keep assertions readable by comparing rationals through their String form.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/stoic/matrix"
	"github.com/katalvlaran/stoic/rational"
	"github.com/stretchr/testify/require"
)

// MustFromInts builds a *Dense from integer rows or fails the test.
func MustFromInts(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromInts(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) rational.Rat {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// strs renders a rational vector as strings ("1", "1/2", ...).
func strs(v []rational.Rat) []string {
	out := make([]string, len(v))
	for i := range v {
		out[i] = v[i].String()
	}

	return out
}

// requireInNullSpace asserts a·v == 0 exactly.
func requireInNullSpace(t *testing.T, a *matrix.Dense, v []rational.Rat) {
	t.Helper()
	y, err := matrix.MulVec(a, v)
	require.NoError(t, err)
	require.True(t, matrix.IsZeroVec(y), "a·v must be zero, got %v", y)
}
