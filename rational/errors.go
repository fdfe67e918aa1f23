// SPDX-License-Identifier: MIT
// Package rational: sentinel error set.
// Every operation returns one of these (possibly wrapped with an op tag);
// callers match with errors.Is.

package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when an intermediate or final value does not fit
	// into int64. Results are never wrapped around silently.
	ErrOverflow = errors.New("rational: int64 overflow")

	// ErrZeroDenominator is returned by New when den == 0.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrDivisionByZero is returned by Quo and Inv when the divisor is zero.
	ErrDivisionByZero = errors.New("rational: division by zero")
)

// Operation tags for error wrapping.
const (
	opNew = "New"
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opQuo = "Quo"
	opInv = "Inv"
	opNeg = "Neg"
	opLCM = "LCM"
)

// ratErrorf wraps err with an operation tag, keeping errors.Is intact.
func ratErrorf(tag string, err error) error {
	return fmt.Errorf("rational.%s: %w", tag, err)
}
