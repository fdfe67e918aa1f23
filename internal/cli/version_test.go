package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, _, err := execute(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "stoic version test-version-1.0.0")
}

func TestTUICmd_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "", "tui", "extra")

	assert.Error(t, err)
}
