// Package matrix offers an exact, rational dense matrix and the
// Gaussian-Jordan kernel used to balance chemical equations.
//
// The matrix package provides:
//
//   - Dense: a row-major buffer of rational.Rat with safe At/Set accessors.
//   - Reduce: reduction to reduced row-echelon form with a deterministic
//     leftmost-column rule and a configurable partial-pivoting policy.
//   - NullSpace: one basis vector per free column, read directly from the RREF.
//   - MulVec / Rank: small facades for verification and diagnostics.
//
// All arithmetic is exact and overflow-checked; kernels return
// rational.ErrOverflow instead of wrapping around. Matrices here are tiny
// (elements × compounds), so kernels favour clarity over blocking tricks.
//
// See the examples in this package for usage patterns.
package matrix
