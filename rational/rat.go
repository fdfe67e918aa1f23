// SPDX-License-Identifier: MIT
// Package rational: the Rat value type.
//
// Purpose:
//   - Exact num/den arithmetic kept in lowest terms after every operation.
//   - Overflow-checked: every method that can grow magnitudes returns an error.
//
// Determinism:
//   - Pure value semantics; no allocations on any path.

package rational

import (
	"math/bits"
	"strconv"
)

// Rat is an exact rational number num/den.
//   - den > 0 and gcd(|num|, den) == 1 for every value built by this package.
//   - The zero value (0/0 internally) reads as 0/1.
type Rat struct {
	num int64 // signed numerator
	den int64 // positive denominator; 0 only in the zero value
}

// Frequently used constants.
var (
	Zero = Rat{num: 0, den: 1}
	One  = Rat{num: 1, den: 1}
)

// New returns num/den reduced to lowest terms with a positive denominator.
//
// Errors:
//   - ErrZeroDenominator when den == 0.
//   - ErrOverflow when the sign cannot be moved to the numerator
//     (den == math.MinInt64 with an odd num, or num == math.MinInt64 with den < 0).
//
// Complexity: O(log min(|num|,|den|)).
func New(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, ratErrorf(opNew, ErrZeroDenominator)
	}
	r, err := normalize(num, den)
	if err != nil {
		return Rat{}, ratErrorf(opNew, err)
	}

	return r, nil
}

// FromInt returns n/1.
// Complexity: O(1).
func FromInt(n int64) Rat { return Rat{num: n, den: 1} }

// normalize divides by the gcd and moves the sign into the numerator.
func normalize(num, den int64) (Rat, error) {
	if num == 0 {
		return Zero, nil
	}
	g := GCD(num, den)
	if g < 0 {
		// GCD of two MinInt64 values: both divisible by 2^63, result is ±1.
		if (num < 0) == (den < 0) {
			return One, nil
		}

		return Rat{num: -1, den: 1}, nil
	}
	num, den = num/g, den/g
	if den < 0 {
		var err error
		if num, err = CheckedNeg(num); err != nil {
			return Rat{}, err
		}
		if den, err = CheckedNeg(den); err != nil {
			return Rat{}, err
		}
	}

	return Rat{num: num, den: den}, nil
}

// Num returns the numerator (carries the sign).
func (r Rat) Num() int64 { return r.num }

// Denom returns the positive denominator.
func (r Rat) Denom() int64 {
	if r.den == 0 {
		return 1
	}

	return r.den
}

// IsZero reports r == 0.
func (r Rat) IsZero() bool { return r.num == 0 }

// IsInt reports whether r has denominator 1.
func (r Rat) IsInt() bool { return r.Denom() == 1 }

// Sign returns -1, 0 or +1.
func (r Rat) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Add returns r + s.
// Implementation:
//   - Stage 1: g = gcd(b, d) so the common denominator is b*(d/g).
//   - Stage 2: num = a*(d/g) + c*(b/g) with checked ops, then normalize.
//
// Complexity: O(log) for the gcds.
func (r Rat) Add(s Rat) (Rat, error) {
	a, b := r.num, r.Denom()
	c, d := s.num, s.Denom()
	g := GCD(b, d)
	x, err := CheckedMul(a, d/g)
	if err != nil {
		return Rat{}, ratErrorf(opAdd, err)
	}
	y, err := CheckedMul(c, b/g)
	if err != nil {
		return Rat{}, ratErrorf(opAdd, err)
	}
	num, err := CheckedAdd(x, y)
	if err != nil {
		return Rat{}, ratErrorf(opAdd, err)
	}
	den, err := CheckedMul(b, d/g)
	if err != nil {
		return Rat{}, ratErrorf(opAdd, err)
	}
	out, err := normalize(num, den)
	if err != nil {
		return Rat{}, ratErrorf(opAdd, err)
	}

	return out, nil
}

// Sub returns r - s.
func (r Rat) Sub(s Rat) (Rat, error) {
	ns, err := s.Neg()
	if err != nil {
		return Rat{}, ratErrorf(opSub, err)
	}
	out, err := r.Add(ns)
	if err != nil {
		return Rat{}, ratErrorf(opSub, err)
	}

	return out, nil
}

// Mul returns r * s.
// Cross-reduces before multiplying (gcd(a,d), gcd(c,b)) so operands already
// in lowest terms only overflow when the true result does not fit.
func (r Rat) Mul(s Rat) (Rat, error) {
	a, b := r.num, r.Denom()
	c, d := s.num, s.Denom()
	if a == 0 || c == 0 {
		return Zero, nil
	}
	g1 := GCD(a, d)
	g2 := GCD(c, b)
	num, err := CheckedMul(a/g1, c/g2)
	if err != nil {
		return Rat{}, ratErrorf(opMul, err)
	}
	den, err := CheckedMul(b/g2, d/g1)
	if err != nil {
		return Rat{}, ratErrorf(opMul, err)
	}
	out, err := normalize(num, den)
	if err != nil {
		return Rat{}, ratErrorf(opMul, err)
	}

	return out, nil
}

// Inv returns 1/r, or ErrDivisionByZero when r == 0.
func (r Rat) Inv() (Rat, error) {
	if r.num == 0 {
		return Rat{}, ratErrorf(opInv, ErrDivisionByZero)
	}
	out, err := normalize(r.Denom(), r.num)
	if err != nil {
		return Rat{}, ratErrorf(opInv, err)
	}

	return out, nil
}

// Quo returns r / s, or ErrDivisionByZero when s == 0.
func (r Rat) Quo(s Rat) (Rat, error) {
	inv, err := s.Inv()
	if err != nil {
		return Rat{}, ratErrorf(opQuo, err)
	}
	out, err := r.Mul(inv)
	if err != nil {
		return Rat{}, ratErrorf(opQuo, err)
	}

	return out, nil
}

// Neg returns -r.
func (r Rat) Neg() (Rat, error) {
	n, err := CheckedNeg(r.num)
	if err != nil {
		return Rat{}, ratErrorf(opNeg, err)
	}

	return Rat{num: n, den: r.Denom()}, nil
}

// Abs returns |r|.
func (r Rat) Abs() (Rat, error) {
	if r.num >= 0 {
		return Rat{num: r.num, den: r.Denom()}, nil
	}

	return r.Neg()
}

// CmpAbs compares |r| and |s| exactly and returns -1, 0 or +1.
// The cross products |a|*d and |c|*b are formed in 128 bits, so CmpAbs never
// overflows and needs no error return.
// Complexity: O(1).
func (r Rat) CmpAbs(s Rat) int {
	hi1, lo1 := bits.Mul64(absU(r.num), uint64(s.Denom()))
	hi2, lo2 := bits.Mul64(absU(s.num), uint64(r.Denom()))
	switch {
	case hi1 < hi2 || (hi1 == hi2 && lo1 < lo2):
		return -1
	case hi1 > hi2 || (hi1 == hi2 && lo1 > lo2):
		return 1
	default:
		return 0
	}
}

// Cmp compares r and s exactly and returns -1, 0 or +1.
func (r Rat) Cmp(s Rat) int {
	rs, ss := r.Sign(), s.Sign()
	if rs != ss {
		if rs < ss {
			return -1
		}

		return 1
	}
	// Same sign: magnitude order, flipped for negatives.
	c := r.CmpAbs(s)
	if rs < 0 {
		return -c
	}

	return c
}

// Equal reports r == s. Canonical form makes this a field comparison.
func (r Rat) Equal(s Rat) bool {
	return r.num == s.num && r.Denom() == s.Denom()
}

// String renders "n" for integers and "n/d" otherwise.
func (r Rat) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Denom(), 10)
}
