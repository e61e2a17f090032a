package palette

// Bradford chromatic adaptation between the D50 white of CIE LCh(ab) and
// the D65 white of sRGB. go-colorful works in D65 throughout and has no
// adaptation step of its own.

func d50ToD65(x, y, z float64) (float64, float64, float64) {
	return 0.9555766*x - 0.0230393*y + 0.0631636*z,
		-0.0282895*x + 1.0099416*y + 0.0210077*z,
		0.0122982*x - 0.0204830*y + 1.3299098*z
}

func d65ToD50(x, y, z float64) (float64, float64, float64) {
	return 1.0478112*x + 0.0228866*y - 0.0501270*z,
		0.0295424*x + 0.9904844*y - 0.0170491*z,
		-0.0092345*x + 0.0150436*y + 0.7521316*z
}
