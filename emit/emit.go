package emit

import (
	"bytes"
	"fmt"
	"io"

	"github.com/kastheco/roadcolors/palette"
)

// Header is printed above the generated variables.
const Header = `/* This is generated code, do not change this file manually.              */
/*                                                                        */
/* To change these definitions, alter road-colors.yaml and run:           */
/*                                                                        */
/* roadcolors --config road-colors.yaml > style/road-colors-generated.mss */
/*                                                                        */
`

// Options controls the line format.
type Options struct {
	// Verbose appends the LCh value and the CIEDE2000 rounding error to
	// every line.
	Verbose bool
}

// entry is one converted swatch ready for printing.
type entry struct {
	road, line string
	colour     palette.Colour
	hex        string
	delta      float64
}

// convert turns every swatch into sRGB, failing on the first colour that
// does not fit.
func convert(p *palette.Palette, withDelta bool) ([]entry, error) {
	var out []entry
	for _, line := range p.Lines {
		for _, sw := range line.Swatches {
			hex, err := sw.Colour.Hex()
			if err != nil {
				return nil, fmt.Errorf("@%s-%s: %w", sw.Road, line.Name, err)
			}
			e := entry{road: sw.Road, line: line.Name, colour: sw.Colour, hex: hex}
			if withDelta {
				if e.delta, err = sw.Colour.DeltaE(); err != nil {
					return nil, fmt.Errorf("@%s-%s: %w", sw.Road, line.Name, err)
				}
			}
			out = append(out, e)
		}
	}
	return out, nil
}

// Render writes the header and one variable per road and line type. Every
// colour is converted before anything is written, so a gamut error leaves
// w untouched.
func Render(w io.Writer, p *palette.Palette, opts Options) error {
	entries, err := convert(p, opts.Verbose)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(Header)
	for _, e := range entries {
		if opts.Verbose {
			fmt.Fprintf(&buf, "@%s-%s: %s; // %s, error %.1f\n", e.road, e.line, e.hex, e.colour.Lch(), e.delta)
		} else {
			fmt.Fprintf(&buf, "@%s-%s: %s;\n", e.road, e.line, e.hex)
		}
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// RenderString is Render into a string.
func RenderString(p *palette.Palette, opts Options) (string, error) {
	var sb bytes.Buffer
	if err := Render(&sb, p, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}
