// SPDX-License-Identifier: MIT

// Package balance: functional configuration.
//
// Defaults:
//   - strict = DefaultStrict (true)
//   - multi  = DefaultMultiSolution (MultiReject)
//   - pivot  = matrix.DefaultPivoting
package balance

import "github.com/katalvlaran/stoic/matrix"

// MultiSolution selects how a null space of dimension > 1 is handled.
type MultiSolution int

const (
	// MultiReject returns ErrUnderdetermined.
	MultiReject MultiSolution = iota

	// MultiCombine sums the normalized basis vectors and divides by their gcd.
	MultiCombine
)

// String implements fmt.Stringer.
func (m MultiSolution) String() string {
	switch m {
	case MultiReject:
		return "reject"
	case MultiCombine:
		return "combine"
	default:
		return "unknown"
	}
}

// ParseMultiSolution maps "reject" / "combine" to a policy.
func ParseMultiSolution(s string) (MultiSolution, bool) {
	switch s {
	case MultiReject.String():
		return MultiReject, true
	case MultiCombine.String():
		return MultiCombine, true
	default:
		return DefaultMultiSolution, false
	}
}

const (
	// DefaultStrict rejects non-positive coefficients.
	DefaultStrict = true

	// DefaultMultiSolution rejects underdetermined equations.
	DefaultMultiSolution = MultiReject
)

const panicMultiInvalid = "balance: WithMultiSolution: unknown policy"

// Option mutates Options.
type Option func(*Options)

// Options is the effective configuration of one Balance call.
type Options struct {
	strict   bool
	multi    MultiSolution
	pivoting matrix.Pivoting
}

// WithStrict toggles strict mode. When off, coefficients ≤ 0 are clamped to 1
// and the result is not re-verified.
func WithStrict(strict bool) Option {
	return func(o *Options) { o.strict = strict }
}

// WithMultiSolution sets the policy for multi-dimensional null spaces.
// Panics on an unknown policy.
func WithMultiSolution(m MultiSolution) Option {
	if m != MultiReject && m != MultiCombine {
		panic(panicMultiInvalid)
	}

	return func(o *Options) { o.multi = m }
}

// WithPivoting forwards the row-selection policy to the solver.
// Panics on an unknown policy (see matrix.WithPivoting).
func WithPivoting(p matrix.Pivoting) Option {
	matrix.WithPivoting(p) // validate eagerly

	return func(o *Options) { o.pivoting = p }
}

// gatherOptions applies setters over the defaults; nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{strict: DefaultStrict, multi: DefaultMultiSolution, pivoting: matrix.DefaultPivoting}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
