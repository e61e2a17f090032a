package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Colour is a point in CIE LCh(ab) relative to the D50 white. L and C use
// the conventional 0..100 scale, H is in degrees.
type Colour struct {
	L, C, H float64
}

// OutOfGamutError is returned when a Colour has no exact sRGB equivalent.
// R, G and B hold the unclamped channel values.
type OutOfGamutError struct {
	Colour  Colour
	R, G, B float64
}

func (e *OutOfGamutError) Error() string {
	return fmt.Sprintf("colour %s is outside sRGB (r=%.3f g=%.3f b=%.3f)", e.Colour.Lch(), e.R, e.G, e.B)
}

// Lch formats the colour with whole-number components, e.g. Lch(70,35,10).
func (c Colour) Lch() string {
	return fmt.Sprintf("Lch(%.0f,%.0f,%.0f)", c.L, c.C, c.H)
}

// lab returns CIE Lab on go-colorful's scale, where L runs 0..1.
func (c Colour) lab() (l, a, b float64) {
	return colorful.HclToLab(c.H, c.C/100, c.L/100)
}

// unclamped converts to sRGB without any gamut handling.
func (c Colour) unclamped() colorful.Color {
	l, a, b := c.lab()
	x, y, z := colorful.LabToXyzWhiteRef(l, a, b, colorful.D50)
	return colorful.Xyz(d50ToD65(x, y, z))
}

// RGB converts the colour to sRGB. Colours outside the sRGB gamut are
// reported as *OutOfGamutError, never clamped.
func (c Colour) RGB() (colorful.Color, error) {
	rgb := c.unclamped()
	if rgb != rgb.Clamped() {
		return colorful.Color{}, &OutOfGamutError{Colour: c, R: rgb.R, G: rgb.G, B: rgb.B}
	}
	return rgb, nil
}

// Hex returns the #rrggbb form of the colour.
func (c Colour) Hex() (string, error) {
	rgb, err := c.RGB()
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

// DeltaE returns the CIEDE2000 difference, on the usual 0..100 scale,
// between the colour and what its hex string actually displays.
func (c Colour) DeltaE() (float64, error) {
	hex, err := c.Hex()
	if err != nil {
		return 0, err
	}
	shown, err := colorful.Hex(hex)
	if err != nil {
		return 0, err
	}

	x, y, z := d65ToD50(shown.Xyz())
	sl, sa, sb := colorful.XyzToLabWhiteRef(x, y, z, colorful.D50)
	l, a, b := c.lab()

	// DistanceCIEDE2000 reads Lab back out of a Color, so both D50 Lab
	// triples ride in through colorful.Lab unchanged.
	return colorful.Lab(l, a, b).DistanceCIEDE2000(colorful.Lab(sl, sa, sb)) * 100, nil
}
