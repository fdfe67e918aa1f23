// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks.
//   - Avoid any logic duplication — each facade delegates to a kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

import "github.com/katalvlaran/stoic/rational"

const opMulVec = "MulVec"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// Rank returns the rank of a (number of pivots after reduction).
// Complexity: O(R²·C).
func Rank(a *Dense, opts ...Option) (int, error) {
	e, err := Reduce(a, opts...)
	if err != nil {
		return 0, err
	}

	return e.Rank(), nil
}

// MulVec computes y = a·x exactly.
// Used to verify that a candidate vector lies in the null space (y == 0).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, rational.ErrOverflow.
//
// Complexity: O(R·C).
func MulVec(a *Dense, x []rational.Rat) ([]rational.Rat, error) {
	if err := ValidateVecLen(a, len(x)); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make([]rational.Rat, a.r)
	var (
		i, j      int
		sum, prod rational.Rat
		err       error
	)
	for i = 0; i < a.r; i++ {
		sum = rational.Zero
		for j = 0; j < a.c; j++ {
			if prod, err = a.data[i*a.c+j].Mul(x[j]); err != nil {
				return nil, matrixErrorf(opMulVec, err)
			}
			if sum, err = sum.Add(prod); err != nil {
				return nil, matrixErrorf(opMulVec, err)
			}
		}
		y[i] = sum
	}

	return y, nil
}

// IsZeroVec reports whether every entry of v is zero.
func IsZeroVec(v []rational.Rat) bool {
	for _, x := range v {
		if !x.IsZero() {
			return false
		}
	}

	return true
}
