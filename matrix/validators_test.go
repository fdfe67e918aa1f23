// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/stoic/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateVecLen covers nil input, matching and mismatched lengths.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	tests := []struct {
		name    string
		m       *matrix.Dense
		n       int
		wantErr error
	}{
		{"nil matrix", nil, 3, matrix.ErrNilMatrix},
		{"match", a, 3, nil},
		{"short", a, 2, matrix.ErrDimensionMismatch},
		{"long", a, 4, matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := matrix.ValidateVecLen(tc.m, tc.n)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)
		})
	}
}

// TestValidateNotNil checks the nil guard in isolation.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	m, err := matrix.NewZeros(1, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}
