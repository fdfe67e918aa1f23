package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceCmd_Use(t *testing.T) {
	assert.Equal(t, "balance [equation...]", balanceCmd.Use)
}

func TestBalanceCmd_HasFlags(t *testing.T) {
	for _, name := range []string{"json", "lenient", "multi", "pivot"} {
		assert.NotNil(t, balanceCmd.Flags().Lookup(name), "flag %s should exist", name)
	}
}

func TestBalanceCmd_Args(t *testing.T) {
	out, _, err := execute(t, "", "balance", "H2 + O2 = H2O", "Fe + O2 = Fe2O3")

	require.NoError(t, err)
	assert.Contains(t, out, "2H2 + O2 = 2H2O")
	assert.Contains(t, out, "4Fe + 3O2 = 2Fe2O3")
}

func TestBalanceCmd_Stdin(t *testing.T) {
	out, _, err := execute(t, "N2 + H2 = NH3\n\nC3H8 + O2 = CO2 + H2O\n", "balance")

	require.NoError(t, err)
	assert.Contains(t, out, "N2 + 3H2 = 2NH3")
	assert.Contains(t, out, "C3H8 + 5O2 = 3CO2 + 4H2O")
}

func TestBalanceCmd_NoInput(t *testing.T) {
	_, _, err := execute(t, "", "balance")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no equation given")
}

func TestBalanceCmd_JSON(t *testing.T) {
	out, _, err := execute(t, "", "balance", "--json", "H2 + O2 = H2O")
	require.NoError(t, err)

	var results []balanceResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "H2 + O2 = H2O", results[0].Input)
	assert.Equal(t, "2H2 + O2 = 2H2O", results[0].Equation)
	assert.Equal(t, []int64{2, 1, 2}, results[0].Coefficients)
	assert.Empty(t, results[0].Error)
}

func TestBalanceCmd_ReportsFailures(t *testing.T) {
	out, _, err := execute(t, "", "balance", "H2 = O2", "H2 + O2 = H2O")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 equations could not be balanced")
	assert.Contains(t, out, "error: ")
	assert.Contains(t, out, "2H2 + O2 = 2H2O")
}

func TestBalanceCmd_MultiCombine(t *testing.T) {
	_, _, err := execute(t, "", "balance", "H2 + O2 = H2O + H2O2")
	require.Error(t, err, "several solutions are rejected by default")

	out, _, err := execute(t, "", "balance", "--multi", "combine", "H2 + O2 = H2O + H2O2")
	require.NoError(t, err)
	assert.Contains(t, out, "3H2 + 2O2 = 2H2O + H2O2")
}

func TestBalanceCmd_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, "", "balance", "--multi", "maybe", "H2 + O2 = H2O")
	assert.ErrorContains(t, err, "invalid --multi")

	_, _, err = execute(t, "", "balance", "--pivot", "random", "H2 + O2 = H2O")
	assert.ErrorContains(t, err, "invalid --pivot")
}

func TestBalanceCmd_PivotFirst(t *testing.T) {
	out, _, err := execute(t, "", "balance", "--pivot", "first", "KMnO4 + HCl = KCl + MnCl2 + H2O + Cl2")

	require.NoError(t, err)
	assert.Contains(t, out, "2KMnO4 + 16HCl = 2KCl + 2MnCl2 + 8H2O + 5Cl2")
}

func TestBalanceCmd_VerboseLogsPipeline(t *testing.T) {
	_, errOut, err := execute(t, "", "--verbose", "balance", "H2 + O2 = H2O")

	require.NoError(t, err)
	assert.Contains(t, errOut, "=== balance H2 + O2 = H2O ===")
	assert.Contains(t, errOut, "[DEBUG] elements: H, O")
	assert.Contains(t, errOut, "[DEBUG] matrix 2x3:")
	assert.Contains(t, errOut, "[DEBUG] rref:")
	assert.Contains(t, errOut, "[INFO] coefficients: [2 1 2]")
}
