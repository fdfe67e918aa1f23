// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination kernels.
// This file defines:
//   - Pivoting (row selection policy inside a pivot column),
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - With exact rationals the pivoting policy never changes the reduced
//     row-echelon form (RREF is unique). It changes which row is swapped in,
//     hence intermediate fraction sizes and how soon ErrOverflow may trigger.
package matrix

// Pivoting selects the working row among rows whose leading entry sits in
// the leftmost available column.
type Pivoting int

const (
	// PivotMaxAbs picks the row with the largest |entry| in the pivot column
	// (partial pivoting). Ties keep the topmost row.
	PivotMaxAbs Pivoting = iota

	// PivotFirst picks the topmost candidate row.
	PivotFirst
)

// String implements fmt.Stringer.
func (p Pivoting) String() string {
	switch p {
	case PivotMaxAbs:
		return "max-abs"
	case PivotFirst:
		return "first"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

// DefaultPivoting is the row-selection policy used when no option is given.
const DefaultPivoting = PivotMaxAbs

// ---------- Internal panic messages (no magic strings) ----------

const panicPivotingInvalid = "matrix: WithPivoting: unknown pivoting policy"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	pivoting Pivoting // DefaultPivoting
}

// WithPivoting sets the row-selection policy for forward elimination.
//
// Errors:
//   - Panics with a stable message when p is not a known policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPivoting(p Pivoting) Option {
	if p != PivotMaxAbs && p != PivotFirst {
		panic(panicPivotingInvalid)
	}

	return func(o *Options) { o.pivoting = p }
}

// ParsePivoting maps a textual policy name ("max-abs", "first") to Pivoting.
// The boolean is false for unknown names.
func ParsePivoting(s string) (Pivoting, bool) {
	switch s {
	case PivotMaxAbs.String():
		return PivotMaxAbs, true
	case PivotFirst.String():
		return PivotFirst, true
	default:
		return DefaultPivoting, false
	}
}

// gatherOptions applies setters over the documented defaults.
// Nil setters are ignored so callers can pass conditional options.
func gatherOptions(opts ...Option) Options {
	o := Options{pivoting: DefaultPivoting}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
