// Package rational implements exact rational numbers over a fixed-width
// signed integer (int64) with explicit overflow detection.
//
// 🚀 Why not float64?
//
//	Gaussian-Jordan elimination over floating point accumulates cancellation
//	error, so a null-space entry that should be exactly 2/3 may come back as
//	0.6666666666666667 and no longer scale to an integer. Rat keeps every
//	intermediate value as a reduced numerator/denominator pair instead.
//
// ✨ Key properties:
//   - Canonical form: denominator > 0 and gcd(|num|, den) == 1 after every op.
//   - The zero value is a valid 0/1.
//   - Every arithmetic method returns (Rat, error); overflow never wraps
//     silently, it surfaces as ErrOverflow.
//   - Value semantics: Rat is a small comparable struct, safe to copy and to
//     share between goroutines.
//
// ⚙️ Usage:
//
//	a, _ := rational.New(1, 3)
//	b := rational.FromInt(2)
//	c, err := a.Mul(b) // 2/3
//	if err != nil {
//	  // handle ErrOverflow
//	}
//	fmt.Println(c) // "2/3"
//
// Integer helpers (GCD, LCM, CheckedAdd, CheckedMul) share the same overflow
// policy and are used by the coefficient normalizer in package balance.
package rational
