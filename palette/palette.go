// Package palette derives road colours from a settings document. Hue,
// lightness and chroma progress linearly over the locked road classes and
// keep the same step for the roads after them.
package palette

import (
	"math"
	"sort"

	"github.com/kastheco/roadcolors/config"
	"github.com/kastheco/roadcolors/log"
)

// StepInfo is the start point and per-road step of one line type.
type StepInfo struct {
	L0, C0 float64
	DL, DC float64
}

// NewStepInfo spreads r evenly over lockFirst roads.
func NewStepInfo(r config.ClassRange, lockFirst int) StepInfo {
	divisions := float64(lockFirst - 1)
	return StepInfo{
		L0: r.Lightness[0],
		C0: r.Chroma[0],
		DL: (r.Lightness[1] - r.Lightness[0]) / divisions,
		DC: (r.Chroma[1] - r.Chroma[0]) / divisions,
	}
}

// At returns the clamped lightness and chroma of road i.
func (s StepInfo) At(i, lockFirst int) (l, c float64) {
	if i < lockFirst {
		l = s.L0 + float64(i)*s.DL
		c = s.C0 + float64(i)*s.DC
	} else {
		last := float64(lockFirst - 1)
		l = s.L0 + last*s.DL + (float64(i)-last)*s.DL
		c = s.C0 + last*s.DC + (float64(i)-last)*s.DC
	}
	return clamp100(l), clamp100(c)
}

// Hues returns one hue per road. The first road gets minHue, the locked
// roads are spaced evenly up to maxHue and later roads continue with the
// same step from their predecessor.
func Hues(n, lockFirst int, minHue, maxHue float64) []float64 {
	step := (maxHue - minHue) / float64(lockFirst-1)
	hues := make([]float64, n)
	for i := range hues {
		switch {
		case i == 0:
			hues[i] = minHue
		case i < lockFirst:
			hues[i] = mod360(minHue + float64(i)*step)
		default:
			hues[i] = mod360(hues[i-1] + step)
		}
	}
	return hues
}

// Swatch is the colour of one road class.
type Swatch struct {
	Road   string
	Colour Colour
}

// Line holds the colours of one line type (fill, casing, ...) in road order.
type Line struct {
	Name     string
	Swatches []Swatch
}

// Palette is the generated colour table of one section.
type Palette struct {
	Section string
	Roads   []string
	Hues    []float64
	// Lines is sorted by name.
	Lines []Line
}

// Generate builds the palette for section. It fails with *config.ConfigError
// when the section is missing or the settings cannot be spread over the
// locked roads. Gamut checks happen later, on conversion.
func Generate(s *config.Settings, section string) (*Palette, error) {
	if len(s.Roads) < 2 {
		return nil, &config.ConfigError{Key: "roads", Msg: "need at least 2 road classes"}
	}
	classes, err := s.Section(section)
	if err != nil {
		return nil, err
	}

	lockFirst := s.Locked()
	log.InfoLog.Printf("generating section %q: %d roads, %d locked, %d line types",
		section, len(s.Roads), lockFirst, len(classes))

	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)

	p := &Palette{
		Section: section,
		Roads:   append([]string(nil), s.Roads...),
		Hues:    Hues(len(s.Roads), lockFirst, s.Hue[0], s.Hue[1]),
		Lines:   make([]Line, 0, len(names)),
	}
	for _, name := range names {
		step := NewStepInfo(classes[name], lockFirst)
		line := Line{Name: name, Swatches: make([]Swatch, len(s.Roads))}
		for i, road := range s.Roads {
			l, c := step.At(i, lockFirst)
			line.Swatches[i] = Swatch{Road: road, Colour: Colour{L: l, C: c, H: p.Hues[i]}}
		}
		p.Lines = append(p.Lines, line)
	}
	return p, nil
}

// Line returns the line type called name.
func (p *Palette) Line(name string) (Line, bool) {
	for _, l := range p.Lines {
		if l.Name == name {
			return l, true
		}
	}
	return Line{}, false
}

func mod360(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func clamp100(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
