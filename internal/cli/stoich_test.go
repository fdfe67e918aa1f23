package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoic/stoich"
)

func TestStoichCmd_RequiresExactlyOneArg(t *testing.T) {
	_, _, err := execute(t, "", "stoich")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestStoichCmd_AmountFlag(t *testing.T) {
	flag := stoichCmd.Flags().Lookup("amount")
	require.NotNil(t, flag)
	assert.Equal(t, "a", flag.Shorthand)
}

func TestStoichCmd_LimitingReagent(t *testing.T) {
	out, _, err := execute(t, "", "stoich", "H2 + O2 = H2O", "--amount", "4g", "--amount", "excess")

	require.NoError(t, err)
	assert.Contains(t, out, "2H2 + O2 = 2H2O")
	assert.Contains(t, out, "remaining (limiting)")
	assert.Contains(t, out, "consumed")
	assert.Contains(t, out, "produced")
	assert.Contains(t, out, "extent: 0.9921 mol")
}

func TestStoichCmd_TooManyAmounts(t *testing.T) {
	_, _, err := execute(t, "", "stoich", "H2 + O2 = H2O", "-a", "1g", "-a", "1g", "-a", "1g", "-a", "1g")

	assert.ErrorIs(t, err, stoich.ErrAmountCount)
}

func TestStoichCmd_BadAmount(t *testing.T) {
	_, _, err := execute(t, "", "stoich", "H2 + O2 = H2O", "-a", "four grams")

	assert.ErrorIs(t, err, stoich.ErrInvalidAmount)
}

func TestStoichCmd_NoLimiting(t *testing.T) {
	_, _, err := execute(t, "", "stoich", "H2 + O2 = H2O", "-a", "excess")

	assert.ErrorIs(t, err, stoich.ErrNoLimiting)
}
