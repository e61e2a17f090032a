package emit

import (
	"image/color"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/kastheco/roadcolors/palette"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	darkText    = lipgloss.Color("#000000")
	lightText   = lipgloss.Color("#ffffff")
)

const swatchWidth = 10

// Preview prints the palette as a table with one row per road and one cell
// per line type. With colour set the cells are painted with their colour;
// otherwise only the hex values are printed. Like Render, it writes nothing
// if any colour is out of gamut.
func Preview(w io.Writer, p *palette.Palette, colour bool) error {
	entries, err := convert(p, false)
	if err != nil {
		return err
	}
	// entries are grouped by line, then by road.
	nRoads := len(p.Roads)

	roadWidth := 0
	for _, r := range p.Roads {
		roadWidth = max(roadWidth, lipgloss.Width(r))
	}
	roadCol := lipgloss.NewStyle().Width(roadWidth + 2)
	cell := lipgloss.NewStyle().Width(swatchWidth).Align(lipgloss.Center)

	heading := cell
	if colour {
		heading = cell.Inherit(headerStyle)
	}

	var sb strings.Builder
	header := []string{roadCol.Render("")}
	for _, line := range p.Lines {
		header = append(header, heading.Render(line.Name))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...) + "\n")

	for i, road := range p.Roads {
		row := []string{roadCol.Render(road)}
		for j := range p.Lines {
			e := entries[j*nRoads+i]
			style := cell
			if colour {
				style = style.Background(lipgloss.Color(e.hex)).Foreground(textOn(e.colour))
			}
			row = append(row, style.Render(e.hex))
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n")
	}

	// lipgloss.Fprint downsamples to what w can show.
	_, err = lipgloss.Fprint(w, sb.String())
	return err
}

// textOn picks a legible label colour for a swatch.
func textOn(c palette.Colour) color.Color {
	if c.L > 60 {
		return darkText
	}
	return lightText
}
