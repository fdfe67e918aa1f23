// SPDX-License-Identifier: MIT
// Package rational: checked int64 helpers.
//
// Purpose:
//   - Single source of truth for overflow-aware integer arithmetic.
//   - Used by Rat internally and by the coefficient normalizer.

package rational

import "math"

// CheckedAdd returns a+b or ErrOverflow.
// Complexity: O(1).
func CheckedAdd(a, b int64) (int64, error) {
	s := a + b
	// Overflow iff both operands share a sign and the sum flips it.
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, ErrOverflow
	}

	return s, nil
}

// CheckedSub returns a-b or ErrOverflow.
// Complexity: O(1).
func CheckedSub(a, b int64) (int64, error) {
	if b == math.MinInt64 {
		// -b is not representable; a-b fits only when a < 0.
		if a >= 0 {
			return 0, ErrOverflow
		}

		return a - b, nil
	}

	return CheckedAdd(a, -b)
}

// CheckedMul returns a*b or ErrOverflow.
// Complexity: O(1).
func CheckedMul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}
	p := a * b
	if p/b != a {
		return 0, ErrOverflow
	}

	return p, nil
}

// CheckedNeg returns -a or ErrOverflow (only for math.MinInt64).
// Complexity: O(1).
func CheckedNeg(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, ErrOverflow
	}

	return -a, nil
}

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) == 0. Inputs equal to math.MinInt64 are folded through uint64
// so the result is exact; a result of 2^63 is reported as math.MinInt64 and
// never occurs for values produced by this package.
// Complexity: O(log min(|a|,|b|)).
func GCD(a, b int64) int64 {
	x, y := absU(a), absU(b)
	for y != 0 {
		x, y = y, x%y
	}

	return int64(x)
}

// LCM returns the non-negative least common multiple of a and b, or
// ErrOverflow. LCM(x, 0) == 0.
// Complexity: O(log min(|a|,|b|)).
func LCM(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	g := GCD(a, b)
	// Divide first to keep the intermediate small.
	l, err := CheckedMul(a/g, b)
	if err != nil {
		return 0, ratErrorf(opLCM, err)
	}
	if l < 0 {
		if l, err = CheckedNeg(l); err != nil {
			return 0, ratErrorf(opLCM, err)
		}
	}

	return l, nil
}

// absU returns |a| as uint64 (exact for math.MinInt64).
func absU(a int64) uint64 {
	if a < 0 {
		return uint64(-(a + 1)) + 1
	}

	return uint64(a)
}
