// SPDX-License-Identifier: MIT
// Package equation - equation model builder.
//
// Purpose:
//   - Split the assembled token stream at '+' and '=' into compound terms.
//   - Fold each term into a Compound in first-seen element order.
//
// Notes:
//   - The final term is closed by a virtual trailing separator.
//   - The first '=' moves every following term to the right side; a second
//     '=' or no '=' at all is a structural error.

package equation

import (
	"strings"
)

// Parse lexes, assembles and builds text into an *Equation with every
// coefficient set to 1.
//
// Errors:
//   - *LexError (ErrLex) or *ParseError (ErrParse).
//   - rational.ErrOverflow when repeated mentions overflow an atom count.
//
// Complexity:
//   - Time O(n·k) for n tokens and k distinct symbols per compound.
func Parse(text string) (*Equation, error) {
	lex, err := Lex(text)
	if err != nil {
		return nil, err
	}
	toks, err := Assemble(lex)
	if err != nil {
		return nil, err
	}

	return Build(toks)
}

// Build groups assembled tokens into compounds and sides.
// Implementation:
//   - Stage 1: reject an empty stream.
//   - Stage 2: scan left to right; each separator closes the pending term.
//     The first Equals records RightIndex and flips the side.
//   - Stage 3: close the trailing term; require exactly one Equals.
func Build(toks []Token) (*Equation, error) {
	if len(toks) == 0 {
		return nil, parseErrorf(reasonEmptyInput, "", 0)
	}

	eq := &Equation{}
	side := Left
	seenEquals := false
	start := 0

	for i, t := range toks {
		if t.Kind != TokenPlus && t.Kind != TokenEquals {
			continue
		}
		c, err := buildCompound(toks[start:i], side, t.Pos)
		if err != nil {
			return nil, err
		}
		eq.Compounds = append(eq.Compounds, c)

		if t.Kind == TokenEquals {
			if seenEquals {
				return nil, parseErrorf(reasonSecondEquals, "=", t.Pos)
			}
			seenEquals = true
			side = Right
			eq.RightIndex = len(eq.Compounds)
		}
		start = i + 1
	}

	// virtual trailing separator
	end := toks[len(toks)-1].Pos + 1
	c, err := buildCompound(toks[start:], side, end)
	if err != nil {
		return nil, err
	}
	eq.Compounds = append(eq.Compounds, c)

	if !seenEquals {
		return nil, parseErrorf(reasonMissingEquals, "", end)
	}

	return eq, nil
}

// buildCompound folds one term slice into a Compound.
// boundary is the position of the separator closing the term and is used
// for empty-term diagnostics.
func buildCompound(term []Token, side Side, boundary int) (Compound, error) {
	if len(term) == 0 {
		return Compound{}, parseErrorf(reasonEmptyTerm, "", boundary)
	}

	c := Compound{Side: side, Coefficient: 1}
	for j := 0; j < len(term); j++ {
		t := term[j]
		if t.Kind != TokenElement {
			return Compound{}, parseErrorf(reasonStrayNumber, sliceText(term), term[0].Pos)
		}
		count := int64(1)
		if j+1 < len(term) && term[j+1].Kind == TokenSubscript {
			count = term[j+1].Count
			j++
		}
		if err := c.add(t.Symbol, count); err != nil {
			return Compound{}, err
		}
	}

	return c, nil
}

// sliceText reconstructs a term for error messages.
func sliceText(term []Token) string {
	var b strings.Builder
	for _, t := range term {
		b.WriteString(t.text())
	}

	return b.String()
}
