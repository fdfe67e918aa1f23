// SPDX-License-Identifier: MIT
// Package balance - stoichiometric matrix construction.
//
// Layout:
//   - rows    = distinct element symbols, first-seen order (eq.Symbols()).
//   - columns = compounds in equation order, left side first.
//   - entry   = signFor(side) · subscript; a conserving coefficient vector x
//     satisfies A·x = 0.

package balance

import (
	"fmt"

	"github.com/katalvlaran/stoic/equation"
	"github.com/katalvlaran/stoic/matrix"
	"github.com/katalvlaran/stoic/rational"
)

// signFor maps Left → +1 and Right → -1.
func signFor(side equation.Side) int64 {
	if side == equation.Right {
		return -1
	}

	return 1
}

// BuildMatrix returns the signed stoichiometric matrix of eq together with
// the element symbol of every row.
//
// Errors:
//   - ErrNilEquation for nil eq.
//   - matrix.ErrInvalidDimensions when eq has no compounds or no elements.
//   - rational.ErrOverflow when a signed count leaves int64.
//
// Complexity:
//   - Time O(R·C·k) for k elements per compound, Space O(R·C).
func BuildMatrix(eq *equation.Equation) (*matrix.Dense, []string, error) {
	if eq == nil {
		return nil, nil, balanceErrorf(opBuildMatrix, ErrNilEquation)
	}
	symbols := eq.Symbols()
	m, err := matrix.NewDense(len(symbols), eq.Len())
	if err != nil {
		return nil, nil, balanceErrorf(opBuildMatrix, err)
	}

	row := make(map[string]int, len(symbols))
	for i, s := range symbols {
		row[s] = i
	}
	for col, c := range eq.Compounds {
		sign := signFor(c.Side)
		for _, el := range c.Elements {
			v, err := rational.CheckedMul(sign, el.Count)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %s in column %d: %w", opBuildMatrix, el.Symbol, col, err)
			}
			if err = m.Set(row[el.Symbol], col, rational.FromInt(v)); err != nil {
				return nil, nil, balanceErrorf(opBuildMatrix, err)
			}
		}
	}

	return m, symbols, nil
}

// checkSides rejects the first symbol (in first-seen order) that occurs on a
// single side of eq.
func checkSides(eq *equation.Equation) error {
	var left, right = map[string]bool{}, map[string]bool{}
	for _, c := range eq.Compounds {
		for _, el := range c.Elements {
			if c.Side == equation.Left {
				left[el.Symbol] = true
			} else {
				right[el.Symbol] = true
			}
		}
	}
	for _, s := range eq.Symbols() {
		switch {
		case !right[s]:
			return fmt.Errorf("%w: %s missing on the right", ErrOneSidedElement, s)
		case !left[s]:
			return fmt.Errorf("%w: %s missing on the left", ErrOneSidedElement, s)
		}
	}

	return nil
}
