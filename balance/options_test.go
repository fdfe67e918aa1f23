package balance_test

import (
	"testing"

	"github.com/katalvlaran/stoic/balance"
	"github.com/katalvlaran/stoic/matrix"
	"github.com/stretchr/testify/assert"
)

// TestDefaultOptions_Documented pins the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := balance.GatherOptionsSnapshot_TestOnly()
	assert.Equal(t, balance.DefaultStrict, o.Strict)
	assert.Equal(t, balance.DefaultMultiSolution, o.Multi)
	assert.Equal(t, matrix.DefaultPivoting, o.Pivoting)
}

// TestOptions_Apply checks every setter and that nil setters are ignored.
func TestOptions_Apply(t *testing.T) {
	o := balance.GatherOptionsSnapshot_TestOnly(
		balance.WithStrict(false),
		nil,
		balance.WithMultiSolution(balance.MultiCombine),
		balance.WithPivoting(matrix.PivotFirst),
	)
	assert.False(t, o.Strict)
	assert.Equal(t, balance.MultiCombine, o.Multi)
	assert.Equal(t, matrix.PivotFirst, o.Pivoting)
}

// TestOptions_PanicOnUnknown covers programmer-error validation.
func TestOptions_PanicOnUnknown(t *testing.T) {
	assert.Panics(t, func() { balance.WithMultiSolution(balance.MultiSolution(7)) })
	assert.Panics(t, func() { balance.WithPivoting(matrix.Pivoting(7)) })
}

// TestParseMultiSolution maps names both ways.
func TestParseMultiSolution(t *testing.T) {
	m, ok := balance.ParseMultiSolution("combine")
	assert.True(t, ok)
	assert.Equal(t, balance.MultiCombine, m)

	m, ok = balance.ParseMultiSolution("nope")
	assert.False(t, ok)
	assert.Equal(t, balance.DefaultMultiSolution, m)
	assert.Equal(t, "reject", balance.MultiReject.String())
}
