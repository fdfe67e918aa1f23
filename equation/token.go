// SPDX-License-Identifier: MIT

package equation

import "strconv"

// LexKind classifies a lexical token.
type LexKind int

const (
	LexUpper  LexKind = iota // 'A'..'Z'
	LexLower                 // 'a'..'z'
	LexNumber                // one or two digits
	LexPlus                  // '+'
	LexEquals                // '=' or '→'
)

// String implements fmt.Stringer.
func (k LexKind) String() string {
	switch k {
	case LexUpper:
		return "Upper"
	case LexLower:
		return "Lower"
	case LexNumber:
		return "Number"
	case LexPlus:
		return "Plus"
	case LexEquals:
		return "Equals"
	default:
		return "LexKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// LexToken is one lexical token.
//   - Char is set for Upper and Lower.
//   - Value is set for Number (0..99).
//   - Pos is the rune offset of the token's first character.
type LexToken struct {
	Kind  LexKind
	Char  rune
	Value int
	Pos   int
}

// TokenKind classifies an assembled token.
type TokenKind int

const (
	TokenElement   TokenKind = iota // one uppercase letter, optional lowercase
	TokenSubscript                  // number directly after an element
	TokenPlus                       // term separator
	TokenEquals                     // side separator
)

// String implements fmt.Stringer.
func (k TokenKind) String() string {
	switch k {
	case TokenElement:
		return "Element"
	case TokenSubscript:
		return "Subscript"
	case TokenPlus:
		return "Plus"
	case TokenEquals:
		return "Equals"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is one assembled token.
//   - Symbol is set for Element ("H", "Fe").
//   - Count is set for Subscript (1..99).
type Token struct {
	Kind   TokenKind
	Symbol string
	Count  int64
	Pos    int
}

// text renders the token the way it appeared in the source.
func (t Token) text() string {
	switch t.Kind {
	case TokenElement:
		return t.Symbol
	case TokenSubscript:
		return strconv.FormatInt(t.Count, 10)
	case TokenPlus:
		return "+"
	default:
		return "="
	}
}
