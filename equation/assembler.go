// SPDX-License-Identifier: MIT

package equation

import (
	"strconv"
)

// Assemble groups lexical tokens into element, subscript and separator tokens.
// MAIN DESCRIPTION:
//   - An Upper starts a symbol; an immediately following Lower is absorbed.
//   - A Number directly after an Element becomes its subscript.
//
// Errors:
//   - *ParseError for an unabsorbed Lower, a Number anywhere else
//     (coefficients are computed, never read), or a zero subscript.
//
// Complexity:
//   - Time O(n), Space O(n).
func Assemble(lex []LexToken) ([]Token, error) {
	out := make([]Token, 0, len(lex))

	for i := 0; i < len(lex); i++ {
		lt := lex[i]
		switch lt.Kind {
		case LexUpper:
			sym := string(lt.Char)
			if i+1 < len(lex) && lex[i+1].Kind == LexLower {
				i++
				sym += string(lex[i].Char)
			}
			out = append(out, Token{Kind: TokenElement, Symbol: sym, Pos: lt.Pos})
		case LexLower:
			return nil, parseErrorf(reasonBareLower, string(lt.Char), lt.Pos)
		case LexNumber:
			if len(out) == 0 || out[len(out)-1].Kind != TokenElement {
				return nil, parseErrorf(reasonStrayNumber, strconv.Itoa(lt.Value), lt.Pos)
			}
			if lt.Value == 0 {
				return nil, parseErrorf(reasonZeroSubscript, strconv.Itoa(lt.Value), lt.Pos)
			}
			out = append(out, Token{Kind: TokenSubscript, Count: int64(lt.Value), Pos: lt.Pos})
		case LexPlus:
			out = append(out, Token{Kind: TokenPlus, Pos: lt.Pos})
		case LexEquals:
			out = append(out, Token{Kind: TokenEquals, Pos: lt.Pos})
		}
	}

	return out, nil
}
