package equation_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/stoic/equation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kinds projects lexical tokens onto their kinds.
func kinds(toks []equation.LexToken) []equation.LexKind {
	out := make([]equation.LexKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}

	return out
}

// TestLex_Classes covers every recognized class.
func TestLex_Classes(t *testing.T) {
	toks, err := equation.Lex("Fe2 + O = X")
	require.NoError(t, err)
	assert.Equal(t, []equation.LexKind{
		equation.LexUpper, equation.LexLower, equation.LexNumber,
		equation.LexPlus, equation.LexUpper, equation.LexEquals, equation.LexUpper,
	}, kinds(toks))
	assert.Equal(t, 'e', toks[1].Char)
	assert.Equal(t, 2, toks[2].Value)
	assert.Equal(t, 2, toks[2].Pos)
}

// TestLex_ArrowAndLineBreaks checks the '→' alias and skipped whitespace.
func TestLex_ArrowAndLineBreaks(t *testing.T) {
	toks, err := equation.Lex("H2\n+\tO2 → H2O\r\n")
	require.NoError(t, err)
	assert.Equal(t, []equation.LexKind{
		equation.LexUpper, equation.LexNumber, equation.LexPlus,
		equation.LexUpper, equation.LexNumber, equation.LexEquals,
		equation.LexUpper, equation.LexNumber, equation.LexUpper,
	}, kinds(toks))
}

// TestLex_TwoDigitCap pins the two-digit limit: "499" is 49 then 9.
func TestLex_TwoDigitCap(t *testing.T) {
	toks, err := equation.Lex("H2SO499")
	require.NoError(t, err)
	require.Len(t, toks, 6)
	assert.Equal(t, 49, toks[4].Value)
	assert.Equal(t, 9, toks[5].Value)
	assert.Equal(t, 6, toks[5].Pos)
}

// TestLex_UnrecognizedCharacter reports the first bad rune.
func TestLex_UnrecognizedCharacter(t *testing.T) {
	_, err := equation.Lex("Ca(OH)2")
	require.ErrorIs(t, err, equation.ErrLex)

	var le *equation.LexError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, '(', le.Char)
	assert.Equal(t, 2, le.Pos)
	assert.Contains(t, le.Error(), `'('`)
}

// TestAssemble_Symbols absorbs one lowercase letter into a symbol.
func TestAssemble_Symbols(t *testing.T) {
	lex, err := equation.Lex("NaCl2")
	require.NoError(t, err)
	toks, err := equation.Assemble(lex)
	require.NoError(t, err)

	require.Len(t, toks, 3)
	assert.Equal(t, "Na", toks[0].Symbol)
	assert.Equal(t, "Cl", toks[1].Symbol)
	assert.Equal(t, equation.TokenSubscript, toks[2].Kind)
	assert.Equal(t, int64(2), toks[2].Count)
}

// TestAssemble_Errors covers the structural failures detected at assembly.
func TestAssemble_Errors(t *testing.T) {
	cases := []struct {
		name, in, reason string
	}{
		{"bare lowercase", "h2", "unexpected lowercase letter"},
		{"double lowercase", "Naa", "unexpected lowercase letter"},
		{"leading coefficient", "2H2", "number not attached to an element"},
		{"number after subscript", "C100", "number not attached to an element"},
		{"number after plus", "H2+3O2", "number not attached to an element"},
		{"zero subscript", "H0", "subscript must be positive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lex, err := equation.Lex(tc.in)
			require.NoError(t, err)
			_, err = equation.Assemble(lex)
			require.ErrorIs(t, err, equation.ErrParse)

			var pe *equation.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.reason, pe.Reason)
		})
	}
}
