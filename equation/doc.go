// SPDX-License-Identifier: MIT

// Package equation turns chemical equation text into a structured model and
// renders it back.
//
// The equation package provides:
//
//   - Lex: a single pass over the input producing Upper/Lower/Number/Plus/
//     Equals tokens. Whitespace and line breaks are skipped, "→" is an alias
//     of "=". Digit runs are capped at two digits per token, so subscripts
//     range 1..99.
//   - Assemble: groups lexical tokens into Element, Subscript, Plus and
//     Equals tokens. A lowercase letter must follow an uppercase one.
//   - Parse: Lex + Assemble + term splitting into an *Equation whose
//     compounds keep their element order of first appearance.
//   - (*Equation).String: "[coef][symbol][subscript]…" terms joined by
//     " + ", sides separated by " = ".
//
// Coefficients are not part of the input grammar: a number that does not
// directly follow an element symbol is a parse error. Repeated symbols inside
// one compound accumulate their counts ("CH3CH3" has C2 H6).
//
// Errors are returned as *LexError (matches ErrLex) and *ParseError
// (matches ErrParse). Nothing in this package panics on user input.
package equation
