package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture enables verbose output into a buffer and restores defaults after.
func capture(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(v)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})

	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("rows=%d", 2)
	Info("balanced %s", "H2O")
	Warn("clamped")

	assert.Equal(t, "[DEBUG] rows=2\n[INFO] balanced H2O\n[WARN] clamped\n", buf.String())
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("x")
	Info("x")
	Warn("x")
	Section("x")
	Block("x", "y")

	assert.Zero(t, buf.Len())
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Matrix")
	assert.Equal(t, "\n=== Matrix ===\n", buf.String())
}

func TestBlock_IndentsEveryLine(t *testing.T) {
	buf := capture(t, true)

	Block("rref", "[1, 0]\n[0, 1]\n")
	assert.Equal(t, "[DEBUG] rref:\n        [1, 0]\n        [0, 1]\n", buf.String())
}
