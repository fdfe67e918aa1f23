// SPDX-License-Identifier: MIT

// Package balance computes the minimal positive integer coefficients that
// conserve every element of a parsed chemical equation.
//
// Pipeline:
//
//  1. Validate that every element occurs on both sides (ErrOneSidedElement).
//  2. BuildMatrix: rows are element symbols in first-seen order, columns are
//     compounds left then right; entries are subscripts signed by side.
//  3. matrix.Reduce + NullSpace over exact rationals.
//  4. Normalize: scale by the lcm of denominators, divide by the gcd.
//  5. Assign the coefficients onto a clone of the input equation.
//
// A one-dimensional null space is the common case. When more than one free
// column remains the result is rejected with ErrUnderdetermined unless
// WithMultiSolution(MultiCombine) asks for the sum of the normalized basis
// vectors.
//
// Strict mode (default) rejects zero or negative coefficients with
// ErrNonPositive; WithStrict(false) clamps them to 1 instead, which is what a
// live preview wants.
//
// The package keeps no state; every call works on its own copies and is safe
// for concurrent use.
package balance
