// SPDX-License-Identifier: MIT
// Package equation - lexer.
//
// Purpose:
//   - Classify every rune of the input in one left-to-right pass.
//   - Fail on the first rune outside the alphabet, naming it.
//
// Alphabet:
//   - 'A'..'Z' → Upper, 'a'..'z' → Lower, '+' → Plus, '=' and '→' → Equals.
//   - Digits → Number. Two adjacent digits form one token; a third digit
//     starts a new token (subscripts are capped at 99).
//   - Spaces, tabs, '\r' and '\n' are skipped.

package equation

// arrow is accepted as an alias of '='.
const arrow = '→'

// Lex converts text into lexical tokens.
//
// Errors:
//   - *LexError (ErrLex) for the first unrecognized rune.
//
// Complexity:
//   - Time O(n), Space O(n) for n runes.
func Lex(text string) ([]LexToken, error) {
	runes := []rune(text)
	out := make([]LexToken, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, LexToken{Kind: LexUpper, Char: r, Pos: i})
		case r >= 'a' && r <= 'z':
			out = append(out, LexToken{Kind: LexLower, Char: r, Pos: i})
		case isDigit(r):
			v := int(r - '0')
			start := i
			if i+1 < len(runes) && isDigit(runes[i+1]) {
				i++
				v = v*10 + int(runes[i]-'0')
			}
			out = append(out, LexToken{Kind: LexNumber, Value: v, Pos: start})
		case r == '+':
			out = append(out, LexToken{Kind: LexPlus, Pos: i})
		case r == '=' || r == arrow:
			out = append(out, LexToken{Kind: LexEquals, Pos: i})
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			// skipped
		default:
			return nil, &LexError{Char: r, Pos: i}
		}
	}

	return out, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
