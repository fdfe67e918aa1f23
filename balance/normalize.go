// SPDX-License-Identifier: MIT

package balance

import (
	"github.com/katalvlaran/stoic/rational"
)

// Normalize turns a rational null-space vector into the smallest integer
// vector with the same direction.
// Implementation:
//   - Stage 1: L = lcm of all denominators.
//   - Stage 2: v[i] = (L / den_i) · num_i.
//   - Stage 3: divide every entry by the gcd of their absolute values.
//
// Signs are preserved; clamping is the caller's concern.
//
// Errors:
//   - rational.ErrOverflow when L or a scaled entry leaves int64.
//
// Complexity:
//   - Time O(n·log M), Space O(n).
func Normalize(v []rational.Rat) ([]int64, error) {
	l := int64(1)
	var err error
	for _, r := range v {
		if l, err = rational.LCM(l, r.Denom()); err != nil {
			return nil, balanceErrorf(opNormalize, err)
		}
	}

	out := make([]int64, len(v))
	for i, r := range v {
		if out[i], err = rational.CheckedMul(l/r.Denom(), r.Num()); err != nil {
			return nil, balanceErrorf(opNormalize, err)
		}
	}
	reduceByGCD(out)

	return out, nil
}

// reduceByGCD divides v in place by the gcd of its entries (no-op for 0 or 1).
func reduceByGCD(v []int64) {
	var g int64
	for _, x := range v {
		g = rational.GCD(g, x)
	}
	if g <= 1 {
		return
	}
	for i := range v {
		v[i] /= g
	}
}

// combine sums integer vectors element-wise and reduces the result.
func combine(vs [][]int64) ([]int64, error) {
	out := make([]int64, len(vs[0]))
	var err error
	for _, v := range vs {
		for i, x := range v {
			if out[i], err = rational.CheckedAdd(out[i], x); err != nil {
				return nil, balanceErrorf(opNormalize, err)
			}
		}
	}
	reduceByGCD(out)

	return out, nil
}

// firstNonPositive returns the index of the first entry ≤ 0, or -1.
func firstNonPositive(v []int64) int {
	for i, x := range v {
		if x <= 0 {
			return i
		}
	}

	return -1
}

// clampPositive raises every entry ≤ 0 to 1 in place.
func clampPositive(v []int64) {
	for i := range v {
		if v[i] < 1 {
			v[i] = 1
		}
	}
}
