package models

import "math"

const (
	labKappa   = 24389.0 / 27.0
	labEpsilon = 216.0 / 24389.0
)

// Lab is a color in the rectangular CIE-Lab color space.
type Lab struct {
	// L is the lightness, nominally in [0, 100].
	L Component
	// A and B are the opponent axes.
	A, B Component
}

// Lch is the cylindrical polar form of CIE-Lab.
type Lch struct {
	// L is the lightness, nominally in [0, 100].
	L Component
	// C is the chroma.
	C Component
	// H is the hue angle in degrees.
	H Component
}

// Oklab is a color in the rectangular Oklab color space.
type Oklab struct {
	// L is the lightness, nominally in [0, 1].
	L Component
	// A and B are the opponent axes.
	A, B Component
}

// Oklch is the cylindrical polar form of Oklab.
type Oklch struct {
	// L is the lightness, nominally in [0, 1].
	L Component
	// C is the chroma.
	C Component
	// H is the hue angle in degrees.
	H Component
}

// toPolar converts opponent axes to chroma and a hue angle in [0, 360).
// The hue of an achromatic color is undefined and reported as NaN.
func toPolar(a, b Component) (chroma, hue Component) {
	chroma = math.Sqrt(a*a + b*b)
	if almostZero(chroma) {
		return chroma, math.NaN()
	}
	return chroma, normalizeHue(math.Atan2(b, a) * 180 / math.Pi)
}

// toRectangular converts chroma and hue back to opponent axes. An
// undefined (NaN) hue behaves as zero degrees.
func toRectangular(chroma, hue Component) (a, b Component) {
	if math.IsNaN(hue) {
		hue = 0
	}
	rad := hue * math.Pi / 180
	return chroma * math.Cos(rad), chroma * math.Sin(rad)
}

// ToPolar converts to the Lch form.
func (c Lab) ToPolar() Lch {
	chroma, hue := toPolar(c.A, c.B)
	return Lch{L: c.L, C: chroma, H: hue}
}

// ToRectangular converts back to the Lab form.
func (c Lch) ToRectangular() Lab {
	a, b := toRectangular(c.C, c.H)
	return Lab{L: c.L, A: a, B: b}
}

// ToPolar converts to the Oklch form.
func (c Oklab) ToPolar() Oklch {
	chroma, hue := toPolar(c.A, c.B)
	return Oklch{L: c.L, C: chroma, H: hue}
}

// ToRectangular converts back to the Oklab form.
func (c Oklch) ToRectangular() Oklab {
	a, b := toRectangular(c.C, c.H)
	return Oklab{L: c.L, A: a, B: b}
}

// ToXyz converts to CIE-XYZ. CIE-Lab is defined against the D50 white
// point.
func (c Lab) ToXyz() XyzD50 {
	f1 := (c.L + 16) / 116
	f0 := f1 + c.A/500
	f2 := f1 - c.B/200

	f0Cubed := f0 * f0 * f0
	x := f0Cubed
	if f0Cubed <= labEpsilon {
		x = (116*f0 - 16) / labKappa
	}

	var y Component
	if c.L > labKappa*labEpsilon {
		v := (c.L + 16) / 116
		y = v * v * v
	} else {
		y = c.L / labKappa
	}

	f2Cubed := f2 * f2 * f2
	z := f2Cubed
	if f2Cubed <= labEpsilon {
		z = (116*f2 - 16) / labKappa
	}

	return XyzD50{
		X: x * whitePointD50[0],
		Y: y * whitePointD50[1],
		Z: z * whitePointD50[2],
	}
}

// ToLab converts to the CIE-Lab color space.
func (c XyzD50) ToLab() Lab {
	f := func(v Component) Component {
		if v > labEpsilon {
			return math.Cbrt(v)
		}
		return (labKappa*v + 16) / 116
	}

	f0 := f(c.X / whitePointD50[0])
	f1 := f(c.Y / whitePointD50[1])
	f2 := f(c.Z / whitePointD50[2])

	return Lab{
		L: 116*f1 - 16,
		A: 500 * (f0 - f1),
		B: 200 * (f1 - f2),
	}
}

// ToXyz converts to CIE-XYZ. Oklab is defined against the D65 white point.
func (c Oklab) ToXyz() XyzD65 {
	l, m, s := oklabToLms.mul(c.L, c.A, c.B)
	l, m, s = l*l*l, m*m*m, s*s*s
	x, y, z := lmsToXyzD65.mul(l, m, s)
	return XyzD65{X: x, Y: y, Z: z}
}

// ToOklab converts to the Oklab color space.
func (c XyzD65) ToOklab() Oklab {
	l, m, s := xyzD65ToLms.mul(c.X, c.Y, c.Z)
	l, m, s = math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)
	lightness, a, b := lmsToOklab.mul(l, m, s)
	return Oklab{L: lightness, A: a, B: b}
}
