package emit

import (
	"bytes"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/kastheco/roadcolors/config"
	"github.com/kastheco/roadcolors/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Preview(&buf, generate(t, roadSettings()), false))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "plain preview must not contain escape codes")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "casing")
	assert.Contains(t, lines[0], "fill")
	assert.Less(t, strings.Index(lines[0], "casing"), strings.Index(lines[0], "fill"))

	assert.True(t, strings.HasPrefix(lines[1], "motorway"))
	assert.Contains(t, lines[1], "#b5596d")
	assert.Contains(t, lines[1], "#e892a2")
	assert.True(t, strings.HasPrefix(lines[4], "secondary"))
	assert.Contains(t, lines[4], "#f7fac7")

	for _, l := range lines[1:] {
		assert.Equal(t, lipgloss.Width(lines[1]), lipgloss.Width(l))
	}
}

func TestPreview_ColourDownsampledForBuffer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Preview(&buf, generate(t, roadSettings()), true))

	// A buffer is not a terminal, so the painted cells are written without
	// background colours.
	assert.Contains(t, buf.String(), "#e892a2")
	assert.NotContains(t, buf.String(), "\x1b[48")
}

func TestTextOn(t *testing.T) {
	assert.Equal(t, darkText, textOn(palette.Colour{L: 90, C: 20, H: 100}))
	assert.Equal(t, lightText, textOn(palette.Colour{L: 40, C: 20, H: 100}))
}

func TestPreview_OutOfGamut(t *testing.T) {
	s := roadSettings()
	s.Classes["mss"]["fill"] = config.ClassRange{Lightness: [2]float64{90, 90}, Chroma: [2]float64{70, 70}}

	var buf bytes.Buffer
	err := Preview(&buf, generate(t, s), true)
	var gamutErr *palette.OutOfGamutError
	require.ErrorAs(t, err, &gamutErr)
	assert.Empty(t, buf.String())
}
