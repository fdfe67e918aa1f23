// SPDX-License-Identifier: MIT
// Package balance: sentinel error set.
//
// ErrOneSidedElement wraps ErrNoSolution, so a caller interested only in
// "cannot be balanced" matches both with errors.Is(err, ErrNoSolution).

package balance

import (
	"errors"
	"fmt"
)

var (
	// ErrNilEquation indicates a nil *equation.Equation.
	ErrNilEquation = errors.New("balance: nil equation")

	// ErrNoSolution indicates that no non-zero coefficient vector exists.
	ErrNoSolution = errors.New("balance: no solution")

	// ErrOneSidedElement indicates an element present on one side only.
	ErrOneSidedElement = fmt.Errorf("%w: element on one side only", ErrNoSolution)

	// ErrUnderdetermined indicates a null space of dimension > 1 under MultiReject.
	ErrUnderdetermined = errors.New("balance: multiple independent solutions")

	// ErrNonPositive indicates a zero or negative coefficient in strict mode.
	ErrNonPositive = errors.New("balance: non-positive coefficient")

	// ErrUnbalanced is returned by Verify when some element is not conserved.
	ErrUnbalanced = errors.New("balance: element not conserved")
)

// Operation tags for error wrapping.
const (
	opBalance     = "Balance"
	opBuildMatrix = "BuildMatrix"
	opNormalize   = "Normalize"
	opVerify      = "Verify"
)

// balanceErrorf wraps err with an operation tag, keeping it reachable via %w.
func balanceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
