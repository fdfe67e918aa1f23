package cli

import (
	"bytes"
	"path/filepath"
	"testing"
)

// execute runs rootCmd with args against a missing config file in a temp
// dir, so defaults apply, and returns stdout, stderr and the error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	balanceJSON, balanceLenient, balanceMulti, balancePivot = false, false, "", ""
	stoichAmounts = nil
	verbose, noColor, configForce = false, false, false

	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetIn(bytes.NewBufferString(stdin))
	cfg := filepath.Join(t.TempDir(), "config.toml")
	rootCmd.SetArgs(append([]string{"--config", cfg, "--no-color"}, args...))
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	return out.String(), errOut.String(), err
}
