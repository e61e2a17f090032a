package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kastheco/roadcolors/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlSettings = `
roads = ["motorway", "trunk", "primary", "secondary"]
hue = [10, 106]
lock_first = 4

[classes.mss.fill]
lightness = [70, 97]
chroma = [35, 25]

[classes.mss.casing]
lightness = [50, 70]
chroma = [40, 35]
`

func TestLoadTOMLSettings(t *testing.T) {
	t.Run("parses valid TOML with roads and classes", func(t *testing.T) {
		tmpDir := t.TempDir()
		tomlPath := filepath.Join(tmpDir, "road-colors.toml")
		require.NoError(t, os.WriteFile(tomlPath, []byte(tomlSettings), 0o644))

		s, err := LoadSettingsFrom(tomlPath)
		require.NoError(t, err)

		assert.Equal(t, []string{"motorway", "trunk", "primary", "secondary"}, s.Roads)
		assert.Equal(t, [2]float64{10, 106}, s.Hue)
		assert.Equal(t, 4, s.LockFirst)

		fill, ok := s.Classes["mss"]["fill"]
		require.True(t, ok)
		assert.Equal(t, [2]float64{70, 97}, fill.Lightness)
		assert.Equal(t, [2]float64{35, 25}, fill.Chroma)

		casing, ok := s.Classes["mss"]["casing"]
		require.True(t, ok)
		assert.Equal(t, [2]float64{50, 70}, casing.Lightness)
	})

	t.Run("returns error on missing file", func(t *testing.T) {
		_, err := LoadSettingsFrom("/nonexistent/road-colors.toml")
		assert.Error(t, err)
	})

	t.Run("returns config error on invalid TOML", func(t *testing.T) {
		_, err := ParseSettings([]byte("roads = [unclosed"), FormatTOML)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, err.Error(), "malformed TOML")
	})

	t.Run("matches the same settings in YAML", func(t *testing.T) {
		fromTOML, err := ParseSettings([]byte(tomlSettings), FormatTOML)
		require.NoError(t, err)
		fromYAML, err := ParseSettings([]byte(yamlSettings), FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, fromYAML, fromTOML)
	})

	t.Run("warns about unknown keys", func(t *testing.T) {
		var buf bytes.Buffer
		log.SetOutput(&buf)
		t.Cleanup(log.Close)

		_, err := ParseSettings([]byte("colour_space = \"lch\"\n"+tomlSettings), FormatTOML)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `ignoring unknown settings key "colour_space"`)
	})

	t.Run("warns about unknown nested keys", func(t *testing.T) {
		var buf bytes.Buffer
		log.SetOutput(&buf)
		t.Cleanup(log.Close)

		_, err := ParseSettings([]byte(tomlSettings+"\n[classes.mss.halo]\nlightness = [80, 90]\nchroma = [10, 10]\ngamma = 2.2\n"), FormatTOML)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `ignoring unknown settings key "classes.mss.halo.gamma"`)
	})
}
