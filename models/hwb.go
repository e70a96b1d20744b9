package models

// Hwb is a color in the HWB (hue, whiteness, blackness) notation of the
// sRGB color space.
type Hwb struct {
	// H is the hue angle in degrees.
	H Component
	// W is the whiteness in [0, 1].
	W Component
	// B is the blackness in [0, 1].
	B Component
}

// ToHwb converts to the HWB notation.
// https://drafts.csswg.org/css-color-4/#rgb-to-hwb
func (c Srgb) ToHwb() Hwb {
	hue, min, max := rgbToHueMinMax(c.R, c.G, c.B)
	return Hwb{H: hue, W: min, B: 1 - max}
}

// ToSrgb converts to the sRGB color space. When whiteness and blackness
// sum to one or more the color is an achromatic gray and the hue is
// ignored.
// https://drafts.csswg.org/css-color-4/#hwb-to-rgb
func (c Hwb) ToSrgb() Srgb {
	if c.W+c.B >= 1 {
		gray := c.W / (c.W + c.B)
		return Srgb{R: gray, G: gray, B: gray}
	}

	rgb := Hsl{H: c.H, S: 1, L: 0.5}.ToSrgb()
	scale := func(v Component) Component { return v*(1-c.W-c.B) + c.W }
	return Srgb{R: scale(rgb.R), G: scale(rgb.G), B: scale(rgb.B)}
}
