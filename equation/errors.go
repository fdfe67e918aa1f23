// SPDX-License-Identifier: MIT
// Package equation: sentinel and typed errors.
//
// Every failure surfaced by Lex, Assemble and Parse is either a *LexError or
// a *ParseError. Both unwrap to a package sentinel so callers may branch with
// errors.Is and still extract context with errors.As.

package equation

import (
	"errors"
	"fmt"
)

var (
	// ErrLex indicates a character outside the equation alphabet.
	ErrLex = errors.New("equation: unrecognized character")

	// ErrParse indicates a structurally invalid token sequence.
	ErrParse = errors.New("equation: invalid structure")
)

// LexError reports the first character the lexer could not classify.
type LexError struct {
	Char rune // offending character
	Pos  int  // rune offset in the input
}

// Error implements error.
func (e *LexError) Error() string {
	return fmt.Sprintf("equation: unrecognized symbol %q at %d", e.Char, e.Pos)
}

// Unwrap exposes ErrLex to errors.Is.
func (e *LexError) Unwrap() error { return ErrLex }

// ParseError reports a structural problem together with the offending text.
type ParseError struct {
	Reason string // short human-readable cause
	Slice  string // offending source fragment (may be empty for empty terms)
	Pos    int    // rune offset where the fragment starts
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Slice == "" {
		return fmt.Sprintf("equation: %s at %d", e.Reason, e.Pos)
	}

	return fmt.Sprintf("equation: %s at %d: %q", e.Reason, e.Pos, e.Slice)
}

// Unwrap exposes ErrParse to errors.Is.
func (e *ParseError) Unwrap() error { return ErrParse }

// Reasons reported in ParseError.Reason.
const (
	reasonBareLower     = "unexpected lowercase letter"
	reasonStrayNumber   = "number not attached to an element"
	reasonZeroSubscript = "subscript must be positive"
	reasonEmptyTerm     = "empty compound term"
	reasonSecondEquals  = "more than one '='"
	reasonMissingEquals = "missing '='"
	reasonEmptyInput    = "empty equation"
)

// parseErrorf builds a *ParseError.
func parseErrorf(reason, slice string, pos int) error {
	return &ParseError{Reason: reason, Slice: slice, Pos: pos}
}
