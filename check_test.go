package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generateInto writes the generated palette for settings to a temp file.
func generateInto(t *testing.T, settings string, extra ...string) string {
	t.Helper()
	target := filepath.Join(t.TempDir(), "road-colors-generated.mss")
	args := append([]string{"-c", settings, "-o", target}, extra...)
	_, err := execute(t, args...)
	require.NoError(t, err)
	return target
}

func TestCheckCmd_UpToDate(t *testing.T) {
	settings := writeSettings(t, testSettings)
	target := generateInto(t, settings)

	out, err := execute(t, "check", "-c", settings, target)
	require.NoError(t, err)
	assert.Contains(t, out, "is up to date")
}

func TestCheckCmd_Stale(t *testing.T) {
	settings := writeSettings(t, testSettings)
	target := generateInto(t, settings)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	stale := []byte(string(data[:len(data)-len("@secondary-fill: #f7fac7;\n")]) + "@secondary-fill: #ffffff;\n")
	require.NoError(t, os.WriteFile(target, stale, 0o644))

	out, err := execute(t, "check", "-c", settings, target)
	assert.ErrorIs(t, err, errStale)
	assert.Contains(t, out, "is out of date")
	assert.Contains(t, out, "#f7fac7")
	assert.Contains(t, out, "#ffffff")
	// Stale lines are reported whole, never split mid-value.
	assert.Contains(t, out, "@secondary-fill: #f7fac7;")
	assert.Contains(t, out, "@secondary-fill: #ffffff;")
	assert.NotContains(t, out, "@trunk-fill")
}

func TestCheckCmd_Verbose(t *testing.T) {
	settings := writeSettings(t, testSettings)
	target := generateInto(t, settings, "--verbose")

	t.Run("verbose file against verbose output", func(t *testing.T) {
		out, err := execute(t, "check", "-c", settings, "-v", target)
		require.NoError(t, err)
		assert.Contains(t, out, "is up to date")
	})

	t.Run("verbose file against plain output", func(t *testing.T) {
		_, err := execute(t, "check", "-c", settings, target)
		assert.ErrorIs(t, err, errStale)
	})
}

func TestCheckCmd_MissingFile(t *testing.T) {
	settings := writeSettings(t, testSettings)

	_, err := execute(t, "check", "-c", settings, filepath.Join(t.TempDir(), "absent.mss"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errStale)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheckCmd_RequiresFile(t *testing.T) {
	_, err := execute(t, "check")
	assert.Error(t, err)
}
