// Package stoic balances chemical equations with exact rational arithmetic,
// from the raw text of a reaction to its minimal integer coefficients.
//
// What is inside?
//
//	A small, deterministic pipeline with one package per stage:
//		• Lexing and parsing: element symbols, subscripts, '+', '=' and '→'
//		• Stoichiometric matrix: one row per element, one column per compound
//		• Exact Gaussian-Jordan reduction over int64 rationals, overflow-checked
//		• Null-space extraction and LCM/GCD normalisation to integers
//		• Stoichiometry: molar masses, limiting reagent, yields
//
// Why exact?
//
//   - No epsilon, no rounding: a coefficient is either right or an error
//   - Deterministic pivots and basis for the same input
//   - Every failure is a sentinel error, matchable with errors.Is
//
// Packages:
//
//	rational/ — overflow-checked int64 fractions, GCD and LCM
//	equation/ — lexer, token assembler, Equation model and rendering
//	matrix/   — rational Dense, Reduce (RREF), NullSpace, MulVec
//	balance/  — stoichiometric matrix, Balance, Verify, Preview, options
//	stoich/   — molar-mass table, amounts and the limiting-reagent calculator
//	cmd/stoic — command line: balance, stoich, tui, config, version
//
// Quick example:
//
//	H2 + O2 = H2O
//
//	    H: 2a       = 2c
//	    O:      2b  =  c
//
//	balances to 2H2 + O2 = 2H2O.
//
//	go install github.com/katalvlaran/stoic/cmd/stoic@latest
package stoic
