package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesToOutput(t *testing.T) {
	t.Cleanup(func() { Logger = nil })

	var buf bytes.Buffer
	require.NoError(t, Init(Config{Output: &buf}))

	Info("Monitoring started", "session", "abc")
	Debug("hidden at info level")

	assert.Contains(t, buf.String(), "Monitoring started")
	assert.Contains(t, buf.String(), "session=abc")
	assert.NotContains(t, buf.String(), "hidden at info level")
}

func TestInit_CreatesLogDirectory(t *testing.T) {
	t.Cleanup(func() { Logger = nil })

	dir := t.TempDir()
	require.NoError(t, Init(Config{ConfigDir: dir}))

	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestHelpers_NoopWithoutInit(t *testing.T) {
	Logger = nil
	assert.NotPanics(t, func() {
		Debug("x")
		Info("x")
		Warn("x")
		Error("x")
	})
}
