package models

import "math"

// Hsl is a color in the HSL (hue, saturation, lightness) notation of the
// sRGB color space.
type Hsl struct {
	// H is the hue angle in degrees.
	H Component
	// S is the saturation in [0, 1].
	S Component
	// L is the lightness in [0, 1].
	L Component
}

// rgbToHueMinMax computes the shared hue/min/max step of the RGB to HSL
// and RGB to HWB algorithms. The hue of an achromatic color is NaN.
func rgbToHueMinMax(r, g, b Component) (hue, min, max Component) {
	max = math.Max(r, math.Max(g, b))
	min = math.Min(r, math.Min(g, b))

	delta := max - min
	if delta == 0 {
		return math.NaN(), min, max
	}

	switch max {
	case r:
		hue = (g - b) / delta
		if g < b {
			hue += 6
		}
	case g:
		hue = (b-r)/delta + 2
	default:
		hue = (r-g)/delta + 4
	}
	return hue * 60, min, max
}

// ToHsl converts to the HSL notation.
// https://drafts.csswg.org/css-color-4/#rgb-to-hsl
func (c Srgb) ToHsl() Hsl {
	hue, min, max := rgbToHueMinMax(c.R, c.G, c.B)

	lightness := (min + max) / 2
	delta := max - min

	var saturation Component
	if delta != 0 && lightness != 0 && lightness != 1 {
		saturation = (max - lightness) / math.Min(lightness, 1-lightness)
	}

	return Hsl{H: hue, S: saturation, L: lightness}
}

// ToSrgb converts to the sRGB color space. NaN components behave as zero,
// which makes a missing hue or saturation produce the expected gray.
// https://drafts.csswg.org/css-color-4/#hsl-to-rgb
func (c Hsl) ToSrgb() Srgb {
	saturation, lightness := c.S, c.L
	if math.IsNaN(saturation) {
		saturation = 0
	}
	if math.IsNaN(lightness) {
		lightness = 0
	}

	if saturation <= 0 {
		return Srgb{R: lightness, G: lightness, B: lightness}
	}

	hue := c.H
	if math.IsNaN(hue) {
		hue = 0
	} else {
		hue = normalizeHue(hue)
	}

	f := func(n Component) Component {
		k := math.Mod(n+hue/30, 12)
		a := saturation * math.Min(lightness, 1-lightness)
		return lightness - a*math.Min(math.Max(math.Min(k-3, 9-k), -1), 1)
	}

	return Srgb{R: f(0), G: f(8), B: f(4)}
}
