// SPDX-License-Identifier: MIT
// Package balance - orchestration.
//
// Purpose:
//   - Compose side validation, matrix construction, exact elimination and
//     normalization into Balance.
//   - Expose the intermediate data (Analyze) for diagnostics.
//   - Provide the text-level helpers BalanceString and Preview.

package balance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stoic/equation"
	"github.com/katalvlaran/stoic/matrix"
	"github.com/katalvlaran/stoic/rational"
)

// Report carries every intermediate of one balancing run.
type Report struct {
	Symbols      []string         // row labels of Matrix
	Matrix       *matrix.Dense    // signed stoichiometric matrix
	Echelon      *matrix.Echelon  // RREF without zero rows
	Basis        [][]rational.Rat // one null-space vector per free column
	Coefficients []int64          // final coefficients, column order
}

// Analyze runs the balancing pipeline on eq without touching it.
// Implementation:
//   - Stage 1: reject nil eq and one-sided elements.
//   - Stage 2: build the signed matrix and reduce it.
//   - Stage 3: extract the null space; an empty one is ErrNoSolution.
//   - Stage 4: normalize (combine when allowed), then enforce positivity
//     according to the strict flag.
//
// Errors:
//   - ErrNilEquation, ErrOneSidedElement, ErrNoSolution, ErrUnderdetermined,
//     ErrNonPositive, rational.ErrOverflow.
//
// Complexity:
//   - Time O(R²·C), Space O(R·C) for R elements and C compounds.
func Analyze(eq *equation.Equation, opts ...Option) (*Report, error) {
	if eq == nil {
		return nil, balanceErrorf(opBalance, ErrNilEquation)
	}
	o := gatherOptions(opts...)

	// Stage 1
	if err := checkSides(eq); err != nil {
		return nil, balanceErrorf(opBalance, err)
	}

	// Stage 2
	a, symbols, err := BuildMatrix(eq)
	if err != nil {
		return nil, balanceErrorf(opBalance, err)
	}
	ech, err := matrix.Reduce(a, matrix.WithPivoting(o.pivoting))
	if err != nil {
		return nil, balanceErrorf(opBalance, err)
	}

	// Stage 3
	basis, err := ech.NullSpace()
	if errors.Is(err, matrix.ErrNoNullSpace) {
		return nil, fmt.Errorf("%s: %w: %w", opBalance, ErrNoSolution, err)
	}
	if err != nil {
		return nil, balanceErrorf(opBalance, err)
	}

	// Stage 4
	coeffs, err := solution(basis, o.multi)
	if err != nil {
		return nil, balanceErrorf(opBalance, err)
	}
	if i := firstNonPositive(coeffs); i >= 0 {
		if o.strict {
			return nil, fmt.Errorf("%s: %w: %s has coefficient %d",
				opBalance, ErrNonPositive, eq.Compounds[i].Formula(), coeffs[i])
		}
		clampPositive(coeffs)
	}

	return &Report{
		Symbols:      symbols,
		Matrix:       a,
		Echelon:      ech,
		Basis:        basis,
		Coefficients: coeffs,
	}, nil
}

// solution picks or combines the normalized basis vectors.
func solution(basis [][]rational.Rat, multi MultiSolution) ([]int64, error) {
	if len(basis) > 1 && multi == MultiReject {
		return nil, fmt.Errorf("%w: %d free columns", ErrUnderdetermined, len(basis))
	}
	ints := make([][]int64, len(basis))
	var err error
	for k, v := range basis {
		if ints[k], err = Normalize(v); err != nil {
			return nil, err
		}
	}
	if len(ints) == 1 {
		return ints[0], nil
	}

	return combine(ints)
}

// Balance returns a clone of eq with every coefficient populated.
// eq itself is never modified; its existing coefficients are ignored.
//
// In strict mode the result is additionally checked with Verify.
func Balance(eq *equation.Equation, opts ...Option) (*equation.Equation, error) {
	rep, err := Analyze(eq, opts...)
	if err != nil {
		return nil, err
	}

	out := eq.Clone()
	for i := range out.Compounds {
		out.Compounds[i].Coefficient = rep.Coefficients[i]
	}
	if gatherOptions(opts...).strict {
		if err = Verify(out); err != nil {
			return nil, balanceErrorf(opBalance, err)
		}
	}

	return out, nil
}

// BalanceString parses text and balances it.
func BalanceString(text string, opts ...Option) (*equation.Equation, error) {
	eq, err := equation.Parse(text)
	if err != nil {
		return nil, err
	}

	return Balance(eq, opts...)
}

// Preview renders text for a live display: the balanced equation when
// balancing succeeds, the parsed but unbalanced equation when it fails, and
// "" when text does not parse.
func Preview(text string, opts ...Option) string {
	eq, err := equation.Parse(text)
	if err != nil {
		return ""
	}
	if bal, err := Balance(eq, opts...); err == nil {
		return bal.String()
	}

	return eq.String()
}

// Verify checks that eq's coefficients conserve every element.
//
// Errors:
//   - ErrUnbalanced naming the first element whose sides differ.
//   - ErrNilEquation, rational.ErrOverflow.
func Verify(eq *equation.Equation) error {
	a, symbols, err := BuildMatrix(eq)
	if err != nil {
		return balanceErrorf(opVerify, err)
	}
	x := make([]rational.Rat, eq.Len())
	for i, c := range eq.Compounds {
		x[i] = rational.FromInt(c.Coefficient)
	}
	y, err := matrix.MulVec(a, x)
	if err != nil {
		return balanceErrorf(opVerify, err)
	}
	for i, v := range y {
		if !v.IsZero() {
			return fmt.Errorf("%s: %w: %s off by %s", opVerify, ErrUnbalanced, symbols[i], v)
		}
	}

	return nil
}
